package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GuideProfile struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	DisplayName string          `gorm:"type:varchar(100);not null"`
	Bio         string          `gorm:"type:text"`
	Location    string          `gorm:"type:varchar(255)"`
	Languages   string          `gorm:"type:text"` // JSON-encoded string array
	HourlyRate  decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	IsVerified  bool            `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
