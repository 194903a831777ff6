package repositories

import (
	"context"

	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
)

// KYCRepository defines KYC verification data operations
type KYCRepository interface {
	Create(ctx context.Context, kyc *entities.KYCVerification) error
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCVerification, error)
}
