package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"press-kit.backend/internal/domain/entities"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/interfaces/http/middleware"
	"press-kit.backend/internal/interfaces/http/response"
	"press-kit.backend/internal/usecases"
	"press-kit.backend/pkg/jwt"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login handles admin login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		if errors.Is(err, domainerrors.ErrUnauthorized) {
			response.Error(c, domainerrors.Unauthorized("Access denied. Admin privileges required."))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, authResponse)
}

// RefreshToken re-issues a token pair from a valid refresh token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrInvalidToken) || errors.Is(err, jwt.ErrExpiredToken) ||
			errors.Is(err, domainerrors.ErrUnauthorized) || errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.Unauthorized("Invalid refresh token"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// GetMe returns the verified identity behind the bearer token
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid token"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.Unauthorized("Invalid token"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
