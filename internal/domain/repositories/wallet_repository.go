package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"wanderly.backend/internal/domain/entities"
)

// WalletRepository defines guide wallet data operations. The wallet
// balance is only ever mutated through Debit and Credit, each of which
// appends exactly one ledger entry.
type WalletRepository interface {
	// GetOrCreate fetches the guide's wallet, creating it with a zero
	// balance when absent. Safe against concurrent first touch.
	GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*entities.GuideWallet, error)

	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideWallet, error)

	// Debit decrements the balance and appends a debit transaction.
	// Fails with domainerrors.ErrInsufficientFunds when the balance
	// cannot cover the amount; the balance never goes negative.
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error)

	// Credit increments the balance and appends a credit transaction.
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error)

	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.TokenTransaction, int64, error)
}
