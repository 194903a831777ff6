package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Booking struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TouristID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	GuideID         *uuid.UUID      `gorm:"type:uuid;index"` // null until assigned
	TourID          *uuid.UUID      `gorm:"type:uuid"`
	Destination     string          `gorm:"type:varchar(255);not null"`
	StartDate       time.Time       `gorm:"not null"`
	DurationHours   int             `gorm:"not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	SpecialRequests string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
