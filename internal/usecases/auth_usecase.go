package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
	"wanderly.backend/pkg/crypto"
	"wanderly.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo, jwtService: jwtService}
}

// Register creates a new tourist or guide account
func (u *AuthUsecase) Register(ctx context.Context, input *entities.CreateUserInput) (*entities.AuthResponse, error) {
	// Check if email already exists
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := entities.UserRole(input.Role)
	if role == "" {
		role = entities.UserRoleTourist
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Get current user to ensure still valid
	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
