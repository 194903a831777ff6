package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/usecases"
)

func TestCreateBooking_Unassigned(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	touristID := uuid.New()
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	booking, err := usecase.CreateBooking(context.Background(), touristID, &entities.CreateBookingInput{
		Destination:   "Annapurna Base Camp",
		StartDate:     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		DurationHours: 8,
		TotalAmount:   1200.50,
	})

	require.NoError(t, err)
	assert.Equal(t, touristID, booking.TouristID)
	assert.Nil(t, booking.GuideID)
	assert.Equal(t, entities.BookingStatusPending, booking.Status)
	assert.Equal(t, "1200.50", booking.TotalAmount.StringFixed(2))
}

func TestCreateBooking_WithGuide(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	touristID := uuid.New()
	guideID := uuid.New()
	profileRepo.On("GetByUserID", mock.Anything, guideID).
		Return(&entities.GuideProfile{ID: uuid.New(), UserID: guideID}, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	booking, err := usecase.CreateBooking(context.Background(), touristID, &entities.CreateBookingInput{
		GuideID:       guideID.String(),
		Destination:   "Chitwan",
		StartDate:     time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		DurationHours: 4,
		TotalAmount:   300,
	})

	require.NoError(t, err)
	require.NotNil(t, booking.GuideID)
	assert.Equal(t, guideID, *booking.GuideID)
}

func TestCreateBooking_UnknownGuide(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	guideID := uuid.New()
	profileRepo.On("GetByUserID", mock.Anything, guideID).Return(nil, domainerrors.ErrNotFound)

	_, err := usecase.CreateBooking(context.Background(), uuid.New(), &entities.CreateBookingInput{
		GuideID:       guideID.String(),
		Destination:   "Lumbini",
		StartDate:     time.Now().Format(time.RFC3339),
		DurationHours: 2,
		TotalAmount:   100,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_BadStartDate(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	_, err := usecase.CreateBooking(context.Background(), uuid.New(), &entities.CreateBookingInput{
		Destination:   "Mustang",
		StartDate:     "next tuesday",
		DurationHours: 6,
		TotalAmount:   500,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestGetBooking_ParticipantOnly(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	touristID := uuid.New()
	guideID := uuid.New()
	booking := &entities.Booking{
		ID:        uuid.New(),
		TouristID: touristID,
		GuideID:   &guideID,
		Status:    entities.BookingStatusPending,
	}
	bookingRepo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	got, err := usecase.GetBooking(context.Background(), guideID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = usecase.GetBooking(context.Background(), uuid.New(), booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestListBookings(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	profileRepo := new(MockGuideProfileRepository)
	usecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)

	callerID := uuid.New()
	bookingRepo.On("ListByParticipant", mock.Anything, callerID, 20, 0).
		Return([]*entities.Booking{{TouristID: callerID}}, int64(1), nil)

	bookings, total, err := usecase.ListBookings(context.Background(), callerID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, bookings, 1)
}
