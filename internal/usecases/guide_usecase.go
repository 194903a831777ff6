package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
)

// GuideUsecase handles guide profile business logic
type GuideUsecase struct {
	profileRepo repositories.GuideProfileRepository
	userRepo    repositories.UserRepository
}

// NewGuideUsecase creates a new guide usecase
func NewGuideUsecase(profileRepo repositories.GuideProfileRepository, userRepo repositories.UserRepository) *GuideUsecase {
	return &GuideUsecase{profileRepo: profileRepo, userRepo: userRepo}
}

// CreateProfile creates the caller's guide profile. One per user; guide
// role required.
func (u *GuideUsecase) CreateProfile(ctx context.Context, userID uuid.UUID, input *entities.CreateGuideProfileInput) (*entities.GuideProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.UserRoleGuide {
		return nil, domainerrors.Forbidden("guide role required")
	}

	_, err = u.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, domainerrors.Conflict("guide profile already exists")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	languages := input.Languages
	if languages == nil {
		languages = []string{}
	}

	profile := &entities.GuideProfile{
		UserID:      userID,
		DisplayName: input.DisplayName,
		Bio:         input.Bio,
		Location:    input.Location,
		Languages:   languages,
		HourlyRate:  decimal.NewFromFloat(input.HourlyRate).Round(2),
	}

	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetProfile returns the caller's guide profile.
func (u *GuideUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.GuideProfile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}
