package models

import (
	"time"

	"github.com/google/uuid"
)

type KYCVerification struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;index"`
	GuideProfileID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FullGovernmentName    string    `gorm:"type:varchar(255);not null"`
	DateOfBirth           string    `gorm:"type:varchar(20)"`
	Gender                string    `gorm:"type:varchar(20)"`
	PermanentAddress      string    `gorm:"type:text"`
	CitizenshipDocURL     string    `gorm:"type:text"`
	NationalIDURL         string    `gorm:"column:national_id_url;type:text"`
	LivePhotoURL          string    `gorm:"type:text"`
	DriversLicenseURL     *string   `gorm:"type:text"`
	Qualification         string    `gorm:"type:varchar(255)"`
	Profession            string    `gorm:"type:varchar(255)"`
	Languages             string    `gorm:"type:text"` // JSON-encoded string array
	ExperienceDescription string    `gorm:"type:text"`
	ServicesProvided      string    `gorm:"type:text"`
	BadHabits             *string   `gorm:"type:text"`
	Hobbies               *string   `gorm:"type:text"`
	Dreams                *string   `gorm:"type:text"`
	PersonalityType       string    `gorm:"type:varchar(100)"`
	WhyChooseYou          string    `gorm:"type:text"`
	EmergencyContactName  string    `gorm:"type:varchar(255)"`
	EmergencyContactPhone string    `gorm:"type:varchar(50)"`
	EmergencyContactRel   string    `gorm:"type:varchar(100)"`
	VerificationStatus    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	VerificationNotes     *string   `gorm:"type:text"`
	VerifiedAt            *time.Time
	VerifiedBy            *string `gorm:"type:uuid"`
	CreatedAt             time.Time
}

func (KYCVerification) TableName() string { return "kyc_verifications" }
