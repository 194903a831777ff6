package repositories

import (
	"context"

	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// GuideProfileRepository defines guide profile data operations
type GuideProfileRepository interface {
	Create(ctx context.Context, profile *entities.GuideProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.GuideProfile, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
}
