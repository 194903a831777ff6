package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
)

// BookingRepository defines booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entities.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error)

	// AssignGuideIfUnassigned sets guide_id only when it is currently
	// null. Returns true when this call won the assignment.
	AssignGuideIfUnassigned(ctx context.Context, bookingID, guideID uuid.UUID) (bool, error)

	// ConfirmIfPending moves the booking to confirmed only when it is
	// not already confirmed. Returns true when the transition happened.
	ConfirmIfPending(ctx context.Context, bookingID uuid.UUID) (bool, error)

	// CancelExpiredPending cancels pending bookings whose start date is
	// before the cutoff. Returns the number of bookings cancelled.
	CancelExpiredPending(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}
