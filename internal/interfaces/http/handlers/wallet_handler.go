package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/interfaces/http/middleware"
	"wanderly.backend/internal/interfaces/http/response"
	"wanderly.backend/pkg/utils"
)

type WalletService interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*entities.GuideWallet, error)
	TopUp(ctx context.Context, userID uuid.UUID, input *entities.TopUpInput) (*entities.GuideWallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.TokenTransaction, int64, error)
}

// WalletHandler handles guide wallet endpoints
type WalletHandler struct {
	walletUsecase WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase WalletService) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// GetWallet returns the caller's wallet
// GET /api/v1/wallet
func (h *WalletHandler) GetWallet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.GetWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// TopUp credits the caller's wallet
// POST /api/v1/wallet/topup
func (h *WalletHandler) TopUp(c *gin.Context) {
	var input entities.TopUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.TopUp(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// ListTransactions returns the caller's ledger entries
// GET /api/v1/wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	txns, total, err := h.walletUsecase.ListTransactions(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": txns,
		"meta":         utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
