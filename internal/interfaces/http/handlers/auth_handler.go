package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/interfaces/http/middleware"
	"wanderly.backend/internal/interfaces/http/response"
	"wanderly.backend/pkg/jwt"
)

type AuthService interface {
	Register(ctx context.Context, input *entities.CreateUserInput) (*entities.AuthResponse, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase AuthService) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates a new account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login authenticates a user
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, domainerrors.Unauthorized("Invalid refresh token"))
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
