package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/infrastructure/models"
	"wanderly.backend/pkg/utils"
)

// KYCRepository implements KYC verification data operations
type KYCRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a new KYC repository
func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

// Create inserts a new verification submission
func (r *KYCRepository) Create(ctx context.Context, kyc *entities.KYCVerification) error {
	if kyc.ID == uuid.Nil {
		kyc.ID = utils.GenerateUUIDv7()
	}
	if kyc.VerificationStatus == "" {
		kyc.VerificationStatus = entities.KYCStatusPending
	}
	kyc.CreatedAt = time.Now()

	langs, err := json.Marshal(kyc.Languages)
	if err != nil {
		return err
	}

	m := &models.KYCVerification{
		ID:                    kyc.ID,
		UserID:                kyc.UserID,
		GuideProfileID:        kyc.GuideProfileID,
		FullGovernmentName:    kyc.FullGovernmentName,
		DateOfBirth:           kyc.DateOfBirth,
		Gender:                kyc.Gender,
		PermanentAddress:      kyc.PermanentAddress,
		CitizenshipDocURL:     kyc.CitizenshipDocURL,
		NationalIDURL:         kyc.NationalIDURL,
		LivePhotoURL:          kyc.LivePhotoURL,
		DriversLicenseURL:     kyc.DriversLicenseURL.Ptr(),
		Qualification:         kyc.Qualification,
		Profession:            kyc.Profession,
		Languages:             string(langs),
		ExperienceDescription: kyc.ExperienceDescription,
		ServicesProvided:      kyc.ServicesProvided,
		BadHabits:             kyc.BadHabits.Ptr(),
		Hobbies:               kyc.Hobbies.Ptr(),
		Dreams:                kyc.Dreams.Ptr(),
		PersonalityType:       kyc.PersonalityType,
		WhyChooseYou:          kyc.WhyChooseYou,
		EmergencyContactName:  kyc.EmergencyContactName,
		EmergencyContactPhone: kyc.EmergencyContactPhone,
		EmergencyContactRel:   kyc.EmergencyContactRel,
		VerificationStatus:    string(kyc.VerificationStatus),
		VerificationNotes:     kyc.VerificationNotes.Ptr(),
		VerifiedBy:            kyc.VerifiedBy.Ptr(),
		CreatedAt:             kyc.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetLatestByUserID gets the most recent submission for a user
func (r *KYCRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYCVerification, error) {
	var m models.KYCVerification
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycToEntity(&m), nil
}

func kycToEntity(m *models.KYCVerification) *entities.KYCVerification {
	var langs []string
	if m.Languages != "" {
		_ = json.Unmarshal([]byte(m.Languages), &langs)
	}
	if langs == nil {
		langs = []string{}
	}

	return &entities.KYCVerification{
		ID:                    m.ID,
		UserID:                m.UserID,
		GuideProfileID:        m.GuideProfileID,
		FullGovernmentName:    m.FullGovernmentName,
		DateOfBirth:           m.DateOfBirth,
		Gender:                m.Gender,
		PermanentAddress:      m.PermanentAddress,
		CitizenshipDocURL:     m.CitizenshipDocURL,
		NationalIDURL:         m.NationalIDURL,
		LivePhotoURL:          m.LivePhotoURL,
		DriversLicenseURL:     null.StringFromPtr(m.DriversLicenseURL),
		Qualification:         m.Qualification,
		Profession:            m.Profession,
		Languages:             langs,
		ExperienceDescription: m.ExperienceDescription,
		ServicesProvided:      m.ServicesProvided,
		BadHabits:             null.StringFromPtr(m.BadHabits),
		Hobbies:               null.StringFromPtr(m.Hobbies),
		Dreams:                null.StringFromPtr(m.Dreams),
		PersonalityType:       m.PersonalityType,
		WhyChooseYou:          m.WhyChooseYou,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		EmergencyContactRel:   m.EmergencyContactRel,
		VerificationStatus:    entities.KYCStatus(m.VerificationStatus),
		VerificationNotes:     null.StringFromPtr(m.VerificationNotes),
		VerifiedAt:            null.TimeFromPtr(m.VerifiedAt),
		VerifiedBy:            null.StringFromPtr(m.VerifiedBy),
		CreatedAt:             m.CreatedAt,
	}
}
