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

type KYCService interface {
	SubmitKYC(ctx context.Context, userID uuid.UUID, input *entities.SubmitKYCInput) (*entities.KYCVerification, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*entities.KYCVerification, error)
}

// KYCHandler handles guide identity verification endpoints
type KYCHandler struct {
	kycUsecase KYCService
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase KYCService) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// SubmitKYC records a verification submission
// POST /api/v1/kyc
func (h *KYCHandler) SubmitKYC(c *gin.Context) {
	var input entities.SubmitKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	kyc, err := h.kycUsecase.SubmitKYC(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"kyc":     kyc,
	})
}

// GetStatus returns the caller's latest verification submission
// GET /api/v1/kyc/status
func (h *KYCHandler) GetStatus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	kyc, err := h.kycUsecase.GetStatus(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No KYC submission found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"status": kyc.VerificationStatus,
		"kyc":    kyc,
	})
}
