package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"wanderly.backend/internal/domain/entities"
	domainerrors "wanderly.backend/internal/domain/errors"
	"wanderly.backend/internal/domain/repositories"
)

// KYCUsecase handles guide identity verification intake
type KYCUsecase struct {
	kycRepo     repositories.KYCRepository
	profileRepo repositories.GuideProfileRepository
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(kycRepo repositories.KYCRepository, profileRepo repositories.GuideProfileRepository) *KYCUsecase {
	return &KYCUsecase{kycRepo: kycRepo, profileRepo: profileRepo}
}

// SubmitKYC records a verification submission for the caller's guide
// profile. The profile must exist first; review happens out of band and
// every submission starts out pending.
func (u *KYCUsecase) SubmitKYC(ctx context.Context, userID uuid.UUID, input *entities.SubmitKYCInput) (*entities.KYCVerification, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NewError("Guide profile not found. Please create a guide profile first.", domainerrors.ErrProfileRequired)
		}
		return nil, err
	}

	languages := input.Languages
	if languages == nil {
		languages = []string{}
	}

	kyc := &entities.KYCVerification{
		UserID:                userID,
		GuideProfileID:        profile.ID,
		FullGovernmentName:    input.FullGovernmentName,
		DateOfBirth:           input.DateOfBirth,
		Gender:                input.Gender,
		PermanentAddress:      input.PermanentAddress,
		CitizenshipDocURL:     input.CitizenshipDocURL,
		NationalIDURL:         input.NationalIDURL,
		LivePhotoURL:          input.LivePhotoURL,
		DriversLicenseURL:     optString(input.DriversLicenseURL),
		Qualification:         input.Qualification,
		Profession:            input.Profession,
		Languages:             languages,
		ExperienceDescription: input.ExperienceDescription,
		ServicesProvided:      input.ServicesProvided,
		BadHabits:             optString(input.BadHabits),
		Hobbies:               optString(input.Hobbies),
		Dreams:                optString(input.Dreams),
		PersonalityType:       input.PersonalityType,
		WhyChooseYou:          input.WhyChooseYou,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		EmergencyContactRel:   input.EmergencyContactRel,
		VerificationStatus:    entities.KYCStatusPending,
	}

	if err := u.kycRepo.Create(ctx, kyc); err != nil {
		return nil, err
	}
	return kyc, nil
}

// GetStatus returns the caller's most recent verification submission.
func (u *KYCUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.KYCVerification, error) {
	return u.kycRepo.GetLatestByUserID(ctx, userID)
}

func optString(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
