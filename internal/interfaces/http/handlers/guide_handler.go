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
)

type GuideService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, input *entities.CreateGuideProfileInput) (*entities.GuideProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entities.GuideProfile, error)
}

// GuideHandler handles guide profile endpoints
type GuideHandler struct {
	guideUsecase GuideService
}

// NewGuideHandler creates a new guide handler
func NewGuideHandler(guideUsecase GuideService) *GuideHandler {
	return &GuideHandler{guideUsecase: guideUsecase}
}

// CreateProfile creates the caller's guide profile
// POST /api/v1/guides/profile
func (h *GuideHandler) CreateProfile(c *gin.Context) {
	var input entities.CreateGuideProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.guideUsecase.CreateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"profile": profile})
}

// GetProfile returns the caller's guide profile
// GET /api/v1/guides/profile
func (h *GuideHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.guideUsecase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Guide profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": profile})
}
