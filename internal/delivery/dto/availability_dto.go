package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAvailabilityRequest struct {
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,hhmm"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required,hhmm"`   // Format: HH:MM
}

// UpdateAvailabilityRequest is a partial update; nil fields keep their value.
type UpdateAvailabilityRequest struct {
	DayOfWeek *string `json:"day_of_week" validate:"omitempty,dayofweek"`
	StartTime *string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime   *string `json:"end_time" validate:"omitempty,hhmm"`
	IsActive  *bool   `json:"is_active"`
}

// Response DTOs

type AvailabilitySlotResponse struct {
	ID             uuid.UUID `json:"availability_uuid"`
	PractitionerID uuid.UUID `json:"practitioner_uuid"`
	DayOfWeek      string    `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AvailabilityListResponse struct {
	Slots []AvailabilitySlotResponse `json:"availability_slots"`
	Total int                        `json:"total"`
}

// SlotAvailabilityResponse is one weekly slot evaluated against a concrete date.
type SlotAvailabilityResponse struct {
	ID          uuid.UUID `json:"availability_uuid"`
	DayOfWeek   string    `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
	Date        string    `json:"date"`
}

type DailyAvailabilityResponse struct {
	PractitionerID uuid.UUID                  `json:"practitioner_id"`
	Date           string                     `json:"date"`
	DayOfWeek      string                     `json:"day_of_week"`
	WeekStart      string                     `json:"week_start"`
	Slots          []SlotAvailabilityResponse `json:"slots"`
}
