package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/infrastructure/models"
	"wanderly.backend/pkg/utils"
)

// GuideProfileRepository implements guide profile data operations
type GuideProfileRepository struct {
	db *gorm.DB
}

// NewGuideProfileRepository creates a new guide profile repository
func NewGuideProfileRepository(db *gorm.DB) *GuideProfileRepository {
	return &GuideProfileRepository{db: db}
}

// Create creates a new guide profile
func (r *GuideProfileRepository) Create(ctx context.Context, profile *entities.GuideProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	langs, err := json.Marshal(profile.Languages)
	if err != nil {
		return err
	}

	m := &models.GuideProfile{
		ID:          profile.ID,
		UserID:      profile.UserID,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		Location:    profile.Location,
		Languages:   string(langs),
		HourlyRate:  profile.HourlyRate,
		IsVerified:  profile.IsVerified,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByUserID gets a guide profile by owner user ID
func (r *GuideProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideProfile, error) {
	var m models.GuideProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return guideProfileToEntity(&m), nil
}

// GetByID gets a guide profile by ID
func (r *GuideProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.GuideProfile, error) {
	var m models.GuideProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return guideProfileToEntity(&m), nil
}

// MarkVerified flags a profile as verified
func (r *GuideProfileRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.GuideProfile{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_verified": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func guideProfileToEntity(m *models.GuideProfile) *entities.GuideProfile {
	var langs []string
	if m.Languages != "" {
		_ = json.Unmarshal([]byte(m.Languages), &langs)
	}
	if langs == nil {
		langs = []string{}
	}

	return &entities.GuideProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		Bio:         m.Bio,
		Location:    m.Location,
		Languages:   langs,
		HourlyRate:  m.HourlyRate,
		IsVerified:  m.IsVerified,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
