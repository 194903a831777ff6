package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
)

// BookingUsecase handles booking business logic
type BookingUsecase struct {
	bookingRepo repositories.BookingRepository
	profileRepo repositories.GuideProfileRepository
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(bookingRepo repositories.BookingRepository, profileRepo repositories.GuideProfileRepository) *BookingUsecase {
	return &BookingUsecase{bookingRepo: bookingRepo, profileRepo: profileRepo}
}

// CreateBooking creates a pending booking for the calling tourist. The
// guide is optional; unassigned bookings can be claimed by a guide at
// settlement time.
func (u *BookingUsecase) CreateBooking(ctx context.Context, touristID uuid.UUID, input *entities.CreateBookingInput) (*entities.Booking, error) {
	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("start_date must be RFC3339")
	}

	amount := decimal.NewFromFloat(input.TotalAmount).Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.BadRequest("total_amount must be positive")
	}

	booking := &entities.Booking{
		TouristID:       touristID,
		Destination:     input.Destination,
		StartDate:       startDate,
		DurationHours:   input.DurationHours,
		TotalAmount:     amount,
		Status:          entities.BookingStatusPending,
		SpecialRequests: input.SpecialRequests,
	}

	if input.GuideID != "" {
		guideID, err := uuid.Parse(input.GuideID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid guide_id")
		}
		// The referenced guide must have a profile.
		profile, err := u.profileRepo.GetByUserID(ctx, guideID)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return nil, domainerrors.NotFound("guide not found")
			}
			return nil, err
		}
		booking.GuideID = &profile.UserID
	}

	if input.TourID != "" {
		tourID, err := uuid.Parse(input.TourID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid tour_id")
		}
		booking.TourID = &tourID
	}

	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking returns a booking to its participants only.
func (u *BookingUsecase) GetBooking(ctx context.Context, callerID, bookingID uuid.UUID) (*entities.Booking, error) {
	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if callerID != booking.TouristID && (booking.GuideID == nil || callerID != *booking.GuideID) {
		return nil, domainerrors.Forbidden("not a participant of this booking")
	}
	return booking, nil
}

// ListBookings returns the caller's bookings, as tourist or guide.
func (u *BookingUsecase) ListBookings(ctx context.Context, callerID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	return u.bookingRepo.ListByParticipant(ctx, callerID, limit, offset)
}
