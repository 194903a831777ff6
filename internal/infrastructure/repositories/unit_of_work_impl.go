package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	domainRepos "wanderly.backend/internal/domain/repositories"
)

type contextKey string

const (
	txKey contextKey = "tx_db"
)

// UnitOfWorkImpl implements UnitOfWork using GORM
type UnitOfWorkImpl struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new UnitOfWork
func NewUnitOfWork(db *gorm.DB) domainRepos.UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

// Do executes the given function within a transaction scope. The
// transaction handle travels in the context so repositories called
// inside fn share it.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := GetDB(ctx, u.db).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDB extracts the transaction DB from context if present, otherwise
// returns the fallback. Repositories in this package use it so their
// writes join an enclosing UnitOfWork.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback
}
