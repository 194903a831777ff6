package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuideToken maps the guide_tokens table: one prepaid wallet per guide.
type GuideToken struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Currency  string          `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GuideToken) TableName() string { return "guide_tokens" }

// TokenTransaction maps the token_transactions ledger. Rows are
// append-only; there is no Update path.
type TokenTransaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	BookingID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Direction string          `gorm:"type:varchar(10);not null"`
	Reason    string          `gorm:"type:varchar(50);not null"`
	Metadata  string          `gorm:"type:text"` // JSON-encoded
	CreatedAt time.Time
}

func (TokenTransaction) TableName() string { return "token_transactions" }
