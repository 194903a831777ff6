package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/usecases"
)

func TestGetWallet_CreatesOnFirstTouch(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	uow := new(MockUnitOfWork)
	usecase := usecases.NewWalletUsecase(walletRepo, uow, "NPR")

	userID := uuid.New()
	walletRepo.On("GetOrCreate", mock.Anything, userID, "NPR").Return(&entities.GuideWallet{
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: "NPR",
	}, nil)

	wallet, err := usecase.GetWallet(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "0.00", wallet.Balance.StringFixed(2))
	assert.Equal(t, "NPR", wallet.Currency)
}

func TestTopUp_CreditsWallet(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	uow := new(MockUnitOfWork)
	usecase := usecases.NewWalletUsecase(walletRepo, uow, "NPR")

	userID := uuid.New()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil)
	walletRepo.On("GetOrCreate", mock.Anything, userID, "NPR").Return(&entities.GuideWallet{
		UserID:   userID,
		Balance:  decimal.NewFromInt(100),
		Currency: "NPR",
	}, nil)
	walletRepo.On("Credit", mock.Anything, userID, mock.Anything, mock.Anything).
		Return(decimal.NewFromInt(600), nil)

	wallet, err := usecase.TopUp(context.Background(), userID, &entities.TopUpInput{Amount: 500})

	require.NoError(t, err)
	assert.Equal(t, "600.00", wallet.Balance.StringFixed(2))

	txn := walletRepo.Calls[1].Arguments.Get(3).(*entities.TokenTransaction)
	assert.Equal(t, entities.TransactionCredit, txn.Direction)
	assert.Equal(t, entities.TransactionReasonTopUp, txn.Reason)
}

func TestTopUp_RejectsNonPositiveAmount(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	uow := new(MockUnitOfWork)
	usecase := usecases.NewWalletUsecase(walletRepo, uow, "NPR")

	_, err := usecase.TopUp(context.Background(), uuid.New(), &entities.TopUpInput{Amount: 0})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	walletRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListTransactions(t *testing.T) {
	walletRepo := new(MockWalletRepository)
	uow := new(MockUnitOfWork)
	usecase := usecases.NewWalletUsecase(walletRepo, uow, "NPR")

	userID := uuid.New()
	walletRepo.On("ListTransactions", mock.Anything, userID, 20, 0).Return([]*entities.TokenTransaction{
		{UserID: userID, Direction: entities.TransactionDebit, Reason: entities.TransactionReasonCommission},
	}, int64(1), nil)

	txns, total, err := usecase.ListTransactions(context.Background(), userID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, txns, 1)
}
