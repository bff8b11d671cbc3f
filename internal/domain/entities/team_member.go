package entities

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	domainerrors "press-kit.backend/internal/domain/errors"
)

// TeamMember represents a team member profile shown in the public gallery.
type TeamMember struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Bio          string       `json:"bio"`
	PhotoURL     string       `json:"photoUrl"`
	ConnectEmail null.String  `json:"connectEmail,omitempty"`
	BookLinks    []BookLink   `json:"bookLinks"`
	SocialLinks  []SocialLink `json:"socialLinks"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// BookLink is a published-work reference on a member profile.
type BookLink struct {
	Title         string      `json:"title"`
	URL           string      `json:"url"`
	Description   null.String `json:"description,omitempty"`
	CoverImageURL null.String `json:"coverImageUrl,omitempty"`
}

// SocialLink is a social profile reference on a member profile.
type SocialLink struct {
	Platform string      `json:"platform"`
	URL      string      `json:"url"`
	Username null.String `json:"username,omitempty"`
}

// Validate checks required fields and that every link parses as a URL.
func (m *TeamMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return domainerrors.BadRequest("name is required")
	}
	if strings.TrimSpace(m.Bio) == "" {
		return domainerrors.BadRequest("bio is required")
	}
	for _, b := range m.BookLinks {
		if strings.TrimSpace(b.Title) == "" {
			return domainerrors.BadRequest("book link title is required")
		}
		if !ValidLocator(b.URL) {
			return domainerrors.BadRequest("book link url is not a valid URL")
		}
		if b.CoverImageURL.Valid && !ValidLocator(b.CoverImageURL.String) {
			return domainerrors.BadRequest("book link cover image url is not a valid URL")
		}
	}
	for _, s := range m.SocialLinks {
		if strings.TrimSpace(s.Platform) == "" {
			return domainerrors.BadRequest("social link platform is required")
		}
		if !ValidLocator(s.URL) {
			return domainerrors.BadRequest("social link url is not a valid URL")
		}
	}
	return nil
}

// ValidLocator reports whether raw parses as an absolute http(s) URL.
func ValidLocator(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
