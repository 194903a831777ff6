package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KYCStatus represents KYC review states
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// KYCVerification represents a guide's identity verification submission.
// Review transitions (approved/rejected) are owned by an admin process.
type KYCVerification struct {
	ID                    uuid.UUID   `json:"id"`
	UserID                uuid.UUID   `json:"userId"`
	GuideProfileID        uuid.UUID   `json:"guideProfileId"`
	FullGovernmentName    string      `json:"fullGovernmentName"`
	DateOfBirth           string      `json:"dateOfBirth"`
	Gender                string      `json:"gender"`
	PermanentAddress      string      `json:"permanentAddress"`
	CitizenshipDocURL     string      `json:"citizenshipDocUrl"`
	NationalIDURL         string      `json:"nationalIdUrl"`
	LivePhotoURL          string      `json:"livePhotoUrl"`
	DriversLicenseURL     null.String `json:"driversLicenseUrl,omitempty"`
	Qualification         string      `json:"qualification"`
	Profession            string      `json:"profession"`
	Languages             []string    `json:"languages"`
	ExperienceDescription string      `json:"experienceDescription"`
	ServicesProvided      string      `json:"servicesProvided"`
	BadHabits             null.String `json:"badHabits,omitempty"`
	Hobbies               null.String `json:"hobbies,omitempty"`
	Dreams                null.String `json:"dreams,omitempty"`
	PersonalityType       string      `json:"personalityType"`
	WhyChooseYou          string      `json:"whyChooseYou"`
	EmergencyContactName  string      `json:"emergencyContactName"`
	EmergencyContactPhone string      `json:"emergencyContactPhone"`
	EmergencyContactRel   string      `json:"emergencyContactRelation"`
	VerificationStatus    KYCStatus   `json:"verificationStatus"`
	VerificationNotes     null.String `json:"verificationNotes,omitempty"`
	VerifiedAt            null.Time   `json:"verifiedAt,omitempty"`
	VerifiedBy            null.String `json:"verifiedBy,omitempty"`
	CreatedAt             time.Time   `json:"createdAt"`
}

// SubmitKYCInput carries the verification payload. Field presence is
// validated by the submitting client; the workflow only checks the
// guide profile precondition and normalizes storage shape.
type SubmitKYCInput struct {
	FullGovernmentName    string   `json:"full_government_name"`
	DateOfBirth           string   `json:"date_of_birth"`
	Gender                string   `json:"gender"`
	PermanentAddress      string   `json:"permanent_address"`
	CitizenshipDocURL     string   `json:"citizenship_doc_url"`
	NationalIDURL         string   `json:"national_id_url"`
	LivePhotoURL          string   `json:"live_photo_url"`
	DriversLicenseURL     string   `json:"drivers_license_url,omitempty"`
	Qualification         string   `json:"qualification"`
	Profession            string   `json:"profession"`
	Languages             []string `json:"languages"`
	ExperienceDescription string   `json:"experience_description"`
	ServicesProvided      string   `json:"services_provided"`
	BadHabits             string   `json:"bad_habits,omitempty"`
	Hobbies               string   `json:"hobbies,omitempty"`
	Dreams                string   `json:"dreams,omitempty"`
	PersonalityType       string   `json:"personality_type"`
	WhyChooseYou          string   `json:"why_choose_you"`
	EmergencyContactName  string   `json:"emergency_contact_name"`
	EmergencyContactPhone string   `json:"emergency_contact_phone"`
	EmergencyContactRel   string   `json:"emergency_contact_relation"`
}
