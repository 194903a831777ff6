package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDirection represents a ledger entry direction
type TransactionDirection string

const (
	TransactionDebit  TransactionDirection = "debit"
	TransactionCredit TransactionDirection = "credit"
)

// Transaction reasons
const (
	TransactionReasonCommission = "commission"
	TransactionReasonTopUp      = "topup"
)

// GuideWallet holds a guide's prepaid balance used to cover platform
// commission. One wallet per guide, created lazily on first touch.
type GuideWallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TokenTransaction is an append-only ledger entry. Every wallet balance
// mutation is paired with exactly one of these records.
type TokenTransaction struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	BookingID *uuid.UUID           `json:"bookingId,omitempty"`
	Amount    decimal.Decimal      `json:"amount"`
	Direction TransactionDirection `json:"direction"`
	Reason    string               `json:"reason"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// TopUpInput represents input for crediting a wallet
type TopUpInput struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
