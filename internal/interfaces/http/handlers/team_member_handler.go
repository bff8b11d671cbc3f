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
	"press-kit.backend/pkg/utils"
)

type TeamMemberHandler struct {
	repo repositories.TeamMemberRepository
}

func NewTeamMemberHandler(repo repositories.TeamMemberRepository) *TeamMemberHandler {
	return &TeamMemberHandler{repo: repo}
}

// List returns all team members, newest first.
// GET /api/v1/team-members
func (h *TeamMemberHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Get returns a single team member.
// GET /api/v1/team-members/:id
func (h *TeamMemberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	member, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

type teamMemberInput struct {
	Name         string                `json:"name" binding:"required"`
	Bio          string                `json:"bio" binding:"required"`
	PhotoURL     string                `json:"photoUrl"`
	ConnectEmail string                `json:"connectEmail"`
	BookLinks    []entities.BookLink   `json:"bookLinks"`
	SocialLinks  []entities.SocialLink `json:"socialLinks"`
}

// Create creates a team member.
// POST /api/v1/team-members
func (h *TeamMemberHandler) Create(c *gin.Context) {
	var input teamMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	now := time.Now()
	member := &entities.TeamMember{
		ID:          utils.GenerateUUIDv7(),
		Name:        strings.TrimSpace(input.Name),
		Bio:         strings.TrimSpace(input.Bio),
		PhotoURL:    strings.TrimSpace(input.PhotoURL),
		BookLinks:   input.BookLinks,
		SocialLinks: input.SocialLinks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if e := strings.TrimSpace(input.ConnectEmail); e != "" {
		member.ConnectEmail = null.StringFrom(e)
	}
	if member.BookLinks == nil {
		member.BookLinks = []entities.BookLink{}
	}
	if member.SocialLinks == nil {
		member.SocialLinks = []entities.SocialLink{}
	}

	if err := member.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.repo.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": member.ID})
}

type teamMemberUpdateInput struct {
	Name         *string                `json:"name"`
	Bio          *string                `json:"bio"`
	PhotoURL     *string                `json:"photoUrl"`
	ConnectEmail *string                `json:"connectEmail"`
	BookLinks    *[]entities.BookLink   `json:"bookLinks"`
	SocialLinks  *[]entities.SocialLink `json:"socialLinks"`
}

// Update merges partial fields into an existing team member. The creation
// timestamp can never be overwritten.
// PUT /api/v1/team-members/:id
func (h *TeamMemberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	var input teamMemberUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if input.Name != nil {
		existing.Name = strings.TrimSpace(*input.Name)
	}
	if input.Bio != nil {
		existing.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.PhotoURL != nil {
		existing.PhotoURL = strings.TrimSpace(*input.PhotoURL)
	}
	if input.ConnectEmail != nil {
		if e := strings.TrimSpace(*input.ConnectEmail); e != "" {
			existing.ConnectEmail = null.StringFrom(e)
		} else {
			existing.ConnectEmail = null.String{}
		}
	}
	if input.BookLinks != nil {
		existing.BookLinks = *input.BookLinks
	}
	if input.SocialLinks != nil {
		existing.SocialLinks = *input.SocialLinks
	}

	if err := existing.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Delete removes a team member. Deleting a missing id reports NotFound.
// DELETE /api/v1/team-members/:id
func (h *TeamMemberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team member ID"))
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team member not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}
