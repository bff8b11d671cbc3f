package entities

import (
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "press-kit.backend/internal/domain/errors"
)

// MaxExcerptLength bounds the excerpt used in listings.
const MaxExcerptLength = 300

// AttachmentType classifies a press release attachment. Derived from the
// filename extension at upload time and stored as-is, never re-derived.
type AttachmentType string

const (
	AttachmentTypePDF      AttachmentType = "pdf"
	AttachmentTypeImage    AttachmentType = "image"
	AttachmentTypeDocument AttachmentType = "document"
	AttachmentTypeOther    AttachmentType = "other"
)

// PressRelease represents a press release, published or draft.
type PressRelease struct {
	ID               uuid.UUID                `json:"id"`
	Title            string                   `json:"title"`
	Subtitle         null.String              `json:"subtitle,omitempty"`
	Content          string                   `json:"content"`
	Excerpt          string                   `json:"excerpt"`
	PublishDate      time.Time                `json:"publishDate"`
	Author           null.String              `json:"author,omitempty"`
	Category         null.String              `json:"category,omitempty"`
	Tags             []string                 `json:"tags,omitempty"`
	FeaturedImageURL null.String              `json:"featuredImageUrl,omitempty"`
	Attachments      []PressReleaseAttachment `json:"attachments,omitempty"`
	IsPublished      bool                     `json:"isPublished"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// PressReleaseAttachment is a downloadable file attached to a press release.
type PressReleaseAttachment struct {
	Name string         `json:"name"`
	URL  string         `json:"url"`
	Type AttachmentType `json:"type"`
	Size null.Int64     `json:"size,omitempty"`
}

// Validate checks required fields, the excerpt bound, and locator validity.
func (p *PressRelease) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return domainerrors.BadRequest("title is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return domainerrors.BadRequest("content is required")
	}
	if strings.TrimSpace(p.Excerpt) == "" {
		return domainerrors.BadRequest("excerpt is required")
	}
	if utf8.RuneCountInString(p.Excerpt) > MaxExcerptLength {
		return domainerrors.BadRequest("excerpt must be at most 300 characters")
	}
	if p.FeaturedImageURL.Valid && !ValidLocator(p.FeaturedImageURL.String) {
		return domainerrors.BadRequest("featured image url is not a valid URL")
	}
	for _, a := range p.Attachments {
		if strings.TrimSpace(a.Name) == "" {
			return domainerrors.BadRequest("attachment name is required")
		}
		if !ValidLocator(a.URL) {
			return domainerrors.BadRequest("attachment url is not a valid URL")
		}
		switch a.Type {
		case AttachmentTypePDF, AttachmentTypeImage, AttachmentTypeDocument, AttachmentTypeOther:
		default:
			return domainerrors.BadRequest("attachment type must be one of pdf, image, document, other")
		}
	}
	return nil
}

// AttachmentTypeFromFilename classifies an attachment by its extension.
func AttachmentTypeFromFilename(name string) AttachmentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return AttachmentTypePDF
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
		return AttachmentTypeImage
	case ".doc", ".docx", ".txt", ".rtf", ".odt":
		return AttachmentTypeDocument
	default:
		return AttachmentTypeOther
	}
}
