package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"press-kit.backend/internal/domain/entities"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/domain/repositories"
	"press-kit.backend/internal/interfaces/http/response"
	"press-kit.backend/pkg/markup"
	"press-kit.backend/pkg/utils"
)

type PressReleaseHandler struct {
	repo repositories.PressReleaseRepository
}

func NewPressReleaseHandler(repo repositories.PressReleaseRepository) *PressReleaseHandler {
	return &PressReleaseHandler{repo: repo}
}

// pressReleaseDetail is the single-record read shape: the record plus its
// content outline for table-of-contents rendering.
type pressReleaseDetail struct {
	*entities.PressRelease
	Outline []markup.Node `json:"outline,omitempty"`
}

// ListPublic returns published press releases, newest publish date first.
// Drafts are never visible on this path.
// GET /api/v1/press-releases
func (h *PressReleaseHandler) ListPublic(c *gin.Context) {
	items, err := h.repo.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListAdmin returns all press releases including drafts, newest created first.
// GET /api/v1/admin/press-releases
func (h *PressReleaseHandler) ListAdmin(c *gin.Context) {
	items, err := h.repo.ListAdmin(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get returns a single published press release with its content outline.
// Drafts read as missing here: a guessed id must not reveal an unpublished
// record exists.
// GET /api/v1/press-releases/:id
func (h *PressReleaseHandler) Get(c *gin.Context) {
	release, ok := h.fetch(c)
	if !ok {
		return
	}
	if !release.IsPublished {
		response.Error(c, domainerrors.NotFound("press release not found"))
		return
	}

	response.Success(c, http.StatusOK, pressReleaseDetail{
		PressRelease: release,
		Outline:      markup.Outline(release.Content),
	})
}

// GetAdmin returns a single press release, draft or published.
// GET /api/v1/admin/press-releases/:id
func (h *PressReleaseHandler) GetAdmin(c *gin.Context) {
	release, ok := h.fetch(c)
	if !ok {
		return
	}

	response.Success(c, http.StatusOK, pressReleaseDetail{
		PressRelease: release,
		Outline:      markup.Outline(release.Content),
	})
}

func (h *PressReleaseHandler) fetch(c *gin.Context) (*entities.PressRelease, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid press release ID"))
		return nil, false
	}

	release, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("press release not found"))
			return nil, false
		}
		response.Error(c, err)
		return nil, false
	}
	return release, true
}

type pressReleaseInput struct {
	Title            string                            `json:"title" binding:"required"`
	Subtitle         string                            `json:"subtitle"`
	Content          string                            `json:"content" binding:"required"`
	Excerpt          string                            `json:"excerpt" binding:"required"`
	PublishDate      time.Time                         `json:"publishDate"`
	Author           string                            `json:"author"`
	Category         string                            `json:"category"`
	Tags             []string                          `json:"tags"`
	FeaturedImageURL string                            `json:"featuredImageUrl"`
	Attachments      []entities.PressReleaseAttachment `json:"attachments"`
	IsPublished      bool                              `json:"isPublished"`
}

// Create creates a press release.
// POST /api/v1/press-releases
func (h *PressReleaseHandler) Create(c *gin.Context) {
	var input pressReleaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	now := time.Now()
	release := &entities.PressRelease{
		ID:          utils.GenerateUUIDv7(),
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		PublishDate: input.PublishDate,
		Tags:        input.Tags,
		Attachments: input.Attachments,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if release.PublishDate.IsZero() {
		release.PublishDate = now
	}
	if s := strings.TrimSpace(input.Subtitle); s != "" {
		release.Subtitle = null.StringFrom(s)
	}
	if a := strings.TrimSpace(input.Author); a != "" {
		release.Author = null.StringFrom(a)
	}
	if cat := strings.TrimSpace(input.Category); cat != "" {
		release.Category = null.StringFrom(cat)
	}
	if u := strings.TrimSpace(input.FeaturedImageURL); u != "" {
		release.FeaturedImageURL = null.StringFrom(u)
	}
	if release.Tags == nil {
		release.Tags = []string{}
	}
	if release.Attachments == nil {
		release.Attachments = []entities.PressReleaseAttachment{}
	}

	if err := release.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), release); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": release.ID})
}

type pressReleaseUpdateInput struct {
	Title            *string                            `json:"title"`
	Subtitle         *string                            `json:"subtitle"`
	Content          *string                            `json:"content"`
	Excerpt          *string                            `json:"excerpt"`
	PublishDate      *time.Time                         `json:"publishDate"`
	Author           *string                            `json:"author"`
	Category         *string                            `json:"category"`
	Tags             *[]string                          `json:"tags"`
	FeaturedImageURL *string                            `json:"featuredImageUrl"`
	Attachments      *[]entities.PressReleaseAttachment `json:"attachments"`
	IsPublished      *bool                              `json:"isPublished"`
}

// Update merges partial fields into an existing press release. The creation
// timestamp can never be overwritten.
// PUT /api/v1/press-releases/:id
func (h *PressReleaseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid press release ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("press release not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input pressReleaseUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if input.Title != nil {
		existing.Title = strings.TrimSpace(*input.Title)
	}
	if input.Subtitle != nil {
		existing.Subtitle = optionalString(*input.Subtitle)
	}
	if input.Content != nil {
		existing.Content = *input.Content
	}
	if input.Excerpt != nil {
		existing.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.PublishDate != nil {
		existing.PublishDate = *input.PublishDate
	}
	if input.Author != nil {
		existing.Author = optionalString(*input.Author)
	}
	if input.Category != nil {
		existing.Category = optionalString(*input.Category)
	}
	if input.Tags != nil {
		existing.Tags = *input.Tags
	}
	if input.FeaturedImageURL != nil {
		existing.FeaturedImageURL = optionalString(*input.FeaturedImageURL)
	}
	if input.Attachments != nil {
		existing.Attachments = *input.Attachments
	}
	if input.IsPublished != nil {
		existing.IsPublished = *input.IsPublished
	}

	if err := existing.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("press release not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Delete removes a press release. Deleting a missing id reports NotFound.
// DELETE /api/v1/press-releases/:id
func (h *PressReleaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid press release ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("press release not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

func optionalString(s string) null.String {
	if t := strings.TrimSpace(s); t != "" {
		return null.StringFrom(t)
	}
	return null.String{}
}
