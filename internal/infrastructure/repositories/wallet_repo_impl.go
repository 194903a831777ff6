package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/infrastructure/models"
	"wanderly.backend/pkg/utils"
)

// WalletRepository implements guide wallet data operations
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetOrCreate fetches the guide's wallet, creating an empty one when
// absent. The insert ignores conflicts on user_id so concurrent first
// touches cannot produce two wallets.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*entities.GuideWallet, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	now := time.Now()
	m := &models.GuideToken{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Balance:   decimal.Zero,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(m).Error; err != nil {
		return nil, err
	}

	// Re-read: either our row or the one that won the race.
	var existing models.GuideToken
	if err := db.Where("user_id = ?", userID).First(&existing).Error; err != nil {
		return nil, err
	}
	return walletToEntity(&existing), nil
}

// GetByUserID gets a wallet by owner user ID
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.GuideWallet, error) {
	var m models.GuideToken
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return walletToEntity(&m), nil
}

// Debit decrements the balance and appends a debit transaction. The
// balance guard lives in the WHERE clause so the balance can never go
// negative, even under concurrent debits.
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.GuideToken{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		// A concurrent debit may have drained the balance after the
		// caller's pre-check. Report the current balance alongside.
		var m models.GuideToken
		if err := db.Where("user_id = ?", userID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, domainerrors.ErrNotFound
			}
			return decimal.Zero, err
		}
		return decimal.Zero, &domainerrors.InsufficientFundsError{
			Required: amount,
			Balance:  m.Balance,
		}
	}

	if err := r.appendTransaction(ctx, userID, amount, entities.TransactionDebit, txn); err != nil {
		return decimal.Zero, err
	}

	var m models.GuideToken
	if err := db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return decimal.Zero, err
	}
	return m.Balance, nil
}

// Credit increments the balance and appends a credit transaction
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, txn *entities.TokenTransaction) (decimal.Decimal, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	result := db.Model(&models.GuideToken{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, domainerrors.ErrNotFound
	}

	if err := r.appendTransaction(ctx, userID, amount, entities.TransactionCredit, txn); err != nil {
		return decimal.Zero, err
	}

	var m models.GuideToken
	if err := db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return decimal.Zero, err
	}
	return m.Balance, nil
}

// ListTransactions lists ledger entries for a user, newest first
func (r *WalletRepository) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.TokenTransaction, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.TokenTransaction{}).
		Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var txnModels []models.TokenTransaction
	if err := query.Find(&txnModels).Error; err != nil {
		return nil, 0, err
	}

	txns := make([]*entities.TokenTransaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, transactionToEntity(&txnModels[i]))
	}
	return txns, total, nil
}

func (r *WalletRepository) appendTransaction(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, direction entities.TransactionDirection, txn *entities.TokenTransaction) error {
	txn.ID = utils.GenerateUUIDv7()
	txn.UserID = userID
	txn.Amount = amount
	txn.Direction = direction
	txn.CreatedAt = time.Now()

	metadata := ""
	if txn.Metadata != nil {
		raw, err := json.Marshal(txn.Metadata)
		if err != nil {
			return err
		}
		metadata = string(raw)
	}

	m := &models.TokenTransaction{
		ID:        txn.ID,
		UserID:    txn.UserID,
		BookingID: txn.BookingID,
		Amount:    txn.Amount,
		Direction: string(txn.Direction),
		Reason:    txn.Reason,
		Metadata:  metadata,
		CreatedAt: txn.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

func walletToEntity(m *models.GuideToken) *entities.GuideWallet {
	return &entities.GuideWallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func transactionToEntity(m *models.TokenTransaction) *entities.TokenTransaction {
	var metadata map[string]interface{}
	if m.Metadata != "" {
		_ = json.Unmarshal([]byte(m.Metadata), &metadata)
	}

	return &entities.TokenTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		BookingID: m.BookingID,
		Amount:    m.Amount,
		Direction: entities.TransactionDirection(m.Direction),
		Reason:    m.Reason,
		Metadata:  metadata,
		CreatedAt: m.CreatedAt,
	}
}
