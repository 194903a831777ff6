package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
)

// WalletUsecase handles guide wallet business logic
type WalletUsecase struct {
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	currency   string
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(walletRepo repositories.WalletRepository, uow repositories.UnitOfWork, currency string) *WalletUsecase {
	return &WalletUsecase{walletRepo: walletRepo, uow: uow, currency: currency}
}

// GetWallet returns the caller's wallet, creating it on first touch.
func (u *WalletUsecase) GetWallet(ctx context.Context, userID uuid.UUID) (*entities.GuideWallet, error) {
	return u.walletRepo.GetOrCreate(ctx, userID, u.currency)
}

// TopUp credits the caller's wallet and records a ledger entry.
func (u *WalletUsecase) TopUp(ctx context.Context, userID uuid.UUID, input *entities.TopUpInput) (*entities.GuideWallet, error) {
	amount := decimal.NewFromFloat(input.Amount).Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.BadRequest("amount must be positive")
	}

	var wallet *entities.GuideWallet
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		w, err := u.walletRepo.GetOrCreate(ctx, userID, u.currency)
		if err != nil {
			return err
		}

		balance, err := u.walletRepo.Credit(ctx, userID, amount, &entities.TokenTransaction{
			Direction: entities.TransactionCredit,
			Reason:    entities.TransactionReasonTopUp,
		})
		if err != nil {
			return err
		}

		w.Balance = balance
		wallet = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// ListTransactions returns the caller's ledger entries, newest first.
func (u *WalletUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.TokenTransaction, int64, error) {
	return u.walletRepo.ListTransactions(ctx, userID, limit, offset)
}
