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

type BookingService interface {
	CreateBooking(ctx context.Context, touristID uuid.UUID, input *entities.CreateBookingInput) (*entities.Booking, error)
	GetBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*entities.Booking, error)
	ListBookings(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error)
}

type SettlementService interface {
	FinalizeBooking(ctx context.Context, callerID uuid.UUID, input *entities.FinalizeBookingInput) (*entities.FinalizeBookingResult, error)
}

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookingUsecase    BookingService
	settlementUsecase SettlementService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase BookingService, settlementUsecase SettlementService) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:    bookingUsecase,
		settlementUsecase: settlementUsecase,
	}
}

// CreateBooking creates a new pending booking
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input entities.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": booking})
}

// GetBooking gets a booking by ID
// GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid booking ID"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	booking, err := h.bookingUsecase.GetBooking(c.Request.Context(), userID, id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Booking not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

// ListBookings lists the caller's bookings
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	bookings, total, err := h.bookingUsecase.ListBookings(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"meta":     utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// FinalizeBooking settles a booking: the platform commission is taken
// from the guide's wallet and the booking flips to confirmed
// POST /api/v1/bookings/:id/finalize
func (h *BookingHandler) FinalizeBooking(c *gin.Context) {
	var body struct {
		BookingID            string   `json:"booking_id"`
		CommissionPercentage *float64 `json:"commission_percentage"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	// The path param wins over the body when both are present.
	input := entities.FinalizeBookingInput{
		BookingID:            body.BookingID,
		CommissionPercentage: body.CommissionPercentage,
	}
	if pathID := c.Param("id"); pathID != "" {
		input.BookingID = pathID
	}
	if input.BookingID == "" {
		response.Error(c, domainerrors.BadRequest("booking_id is required"))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	result, err := h.settlementUsecase.FinalizeBooking(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":    true,
		"commission": result.Commission,
		"balance":    result.Balance,
	})
}
