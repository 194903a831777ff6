package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"wanderly.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entities.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Booking, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) AssignGuideIfUnassigned(ctx context.Context, bookingID, guideID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookingID, guideID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ConfirmIfPending(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CancelExpiredPending(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).(int64), args.Error(1)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*entities.GuideWallet, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuideWallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideWallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuideWallet), args.Error(1)
}

func (m *MockWalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, txn)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, amount, txn)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.TokenTransaction, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.TokenTransaction), args.Get(1).(int64), args.Error(2)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock GuideProfileRepository
type MockGuideProfileRepository struct {
	mock.Mock
}

func (m *MockGuideProfileRepository) Create(ctx context.Context, profile *entities.GuideProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockGuideProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuideProfile), args.Error(1)
}

func (m *MockGuideProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.GuideProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuideProfile), args.Error(1)
}

func (m *MockGuideProfileRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock KYCRepository
type MockKYCRepository struct {
	mock.Mock
}

func (m *MockKYCRepository) Create(ctx context.Context, kyc *entities.KYCVerification) error {
	args := m.Called(ctx, kyc)
	return args.Error(0)
}

func (m *MockKYCRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KYCVerification), args.Error(1)
}
