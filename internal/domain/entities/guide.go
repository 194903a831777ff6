package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuideProfile represents a guide's public profile. It must exist before
// a guide can submit KYC or be assigned bookings.
type GuideProfile struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	DisplayName string          `json:"displayName"`
	Bio         string          `json:"bio,omitempty"`
	Location    string          `json:"location,omitempty"`
	Languages   []string        `json:"languages"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	IsVerified  bool            `json:"isVerified"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateGuideProfileInput represents input for creating a guide profile
type CreateGuideProfileInput struct {
	DisplayName string   `json:"displayName" binding:"required,min=2,max=100"`
	Bio         string   `json:"bio,omitempty"`
	Location    string   `json:"location,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	HourlyRate  float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
}
