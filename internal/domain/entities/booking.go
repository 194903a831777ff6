package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents booking lifecycle states
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a tourist's reservation of a guide's time. GuideID
// stays nil for ad-hoc "find a buddy" requests until a guide claims the
// booking during settlement.
type Booking struct {
	ID              uuid.UUID       `json:"id"`
	TouristID       uuid.UUID       `json:"touristId"`
	GuideID         *uuid.UUID      `json:"guideId,omitempty"`
	TourID          *uuid.UUID      `json:"tourId,omitempty"`
	Destination     string          `json:"destination"`
	StartDate       time.Time       `json:"startDate"`
	DurationHours   int             `json:"durationHours"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          BookingStatus   `json:"status"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// CreateBookingInput represents input for creating a booking
type CreateBookingInput struct {
	GuideID         string  `json:"guide_id,omitempty"`
	TourID          string  `json:"tour_id,omitempty"`
	Destination     string  `json:"destination" binding:"required"`
	StartDate       string  `json:"start_date" binding:"required"`
	DurationHours   int     `json:"duration_hours" binding:"required,gt=0"`
	TotalAmount     float64 `json:"total_amount" binding:"required,gt=0"`
	SpecialRequests string  `json:"special_requests,omitempty"`
}

// FinalizeBookingInput represents the finalize request body
type FinalizeBookingInput struct {
	BookingID            string   `json:"booking_id" binding:"required"`
	CommissionPercentage *float64 `json:"commission_percentage,omitempty"`
}

// FinalizeBookingResult represents a successful settlement
type FinalizeBookingResult struct {
	Commission decimal.Decimal `json:"commission"`
	Balance    decimal.Decimal `json:"balance"`
}
