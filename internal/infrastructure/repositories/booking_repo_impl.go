package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/infrastructure/models"
	"wanderly.backend/pkg/utils"
)

// BookingRepository implements booking data operations
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking in pending state
func (r *BookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = utils.GenerateUUIDv7()
	}
	if booking.Status == "" {
		booking.Status = entities.BookingStatusPending
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	m := bookingToModel(booking)
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	var m models.Booking
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return bookingToEntity(&m), nil
}

// ListByParticipant lists bookings where the user is the tourist or the
// assigned guide, newest first
func (r *BookingRepository) ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Booking{}).
		Where("tourist_id = ? OR guide_id = ?", userID, userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var bookingModels []models.Booking
	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, 0, err
	}

	bookings := make([]*entities.Booking, 0, len(bookingModels))
	for i := range bookingModels {
		bookings = append(bookings, bookingToEntity(&bookingModels[i]))
	}
	return bookings, total, nil
}

// AssignGuideIfUnassigned sets guide_id only when it is currently null.
// The WHERE clause is the lock: two racing claimers cannot both win.
func (r *BookingRepository) AssignGuideIfUnassigned(ctx context.Context, bookingID, guideID uuid.UUID) (bool, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND guide_id IS NULL", bookingID).
		Updates(map[string]interface{}{"guide_id": guideID, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ConfirmIfPending transitions a booking to confirmed only when it is
// not already confirmed. RowsAffected == 0 means another finalize won.
func (r *BookingRepository) ConfirmIfPending(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status <> ?", bookingID, string(entities.BookingStatusConfirmed)).
		Updates(map[string]interface{}{"status": string(entities.BookingStatusConfirmed), "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CancelExpiredPending cancels pending bookings whose start date passed
func (r *BookingRepository) CancelExpiredPending(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var ids []uuid.UUID
	query := db.Model(&models.Booking{}).
		Where("status = ? AND start_date < ?", string(entities.BookingStatusPending), cutoff)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := db.Model(&models.Booking{}).
		Where("id IN ? AND status = ?", ids, string(entities.BookingStatusPending)).
		Updates(map[string]interface{}{"status": string(entities.BookingStatusCancelled), "updated_at": time.Now()})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func bookingToModel(b *entities.Booking) *models.Booking {
	return &models.Booking{
		ID:              b.ID,
		TouristID:       b.TouristID,
		GuideID:         b.GuideID,
		TourID:          b.TourID,
		Destination:     b.Destination,
		StartDate:       b.StartDate,
		DurationHours:   b.DurationHours,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func bookingToEntity(m *models.Booking) *entities.Booking {
	return &entities.Booking{
		ID:              m.ID,
		TouristID:       m.TouristID,
		GuideID:         m.GuideID,
		TourID:          m.TourID,
		Destination:     m.Destination,
		StartDate:       m.StartDate,
		DurationHours:   m.DurationHours,
		TotalAmount:     m.TotalAmount,
		Status:          entities.BookingStatus(m.Status),
		SpecialRequests: m.SpecialRequests,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
