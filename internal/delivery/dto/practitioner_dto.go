package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePractitionerRequest struct {
	Name               string      `json:"practitioner_name" validate:"required,min=2,max=255"`
	Email              string      `json:"practitioner_email" validate:"omitempty,email"`
	Phone              string      `json:"practitioner_phone" validate:"omitempty,max=50"`
	Specialty          string      `json:"specialty" validate:"omitempty,max=120"`
	Address            string      `json:"practitioner_address" validate:"omitempty,max=255"`
	City               string      `json:"practitioner_city" validate:"omitempty,max=100"`
	State              string      `json:"practitioner_state" validate:"omitempty,max=100"`
	Zip                string      `json:"practitioner_zip" validate:"omitempty,max=20"`
	AppointmentTypeIDs []uuid.UUID `json:"appointment_type_ids"`
}

// UpdatePractitionerRequest lists every editable field. The practice a
// practitioner belongs to is deliberately absent.
type UpdatePractitionerRequest struct {
	Name               *string      `json:"practitioner_name" validate:"omitempty,min=2,max=255"`
	Email              *string      `json:"practitioner_email" validate:"omitempty,email"`
	Phone              *string      `json:"practitioner_phone" validate:"omitempty,max=50"`
	Specialty          *string      `json:"specialty" validate:"omitempty,max=120"`
	Address            *string      `json:"practitioner_address" validate:"omitempty,max=255"`
	City               *string      `json:"practitioner_city" validate:"omitempty,max=100"`
	State              *string      `json:"practitioner_state" validate:"omitempty,max=100"`
	Zip                *string      `json:"practitioner_zip" validate:"omitempty,max=20"`
	AppointmentTypeIDs *[]uuid.UUID `json:"appointment_type_ids"`
}

// Response DTOs

type PractitionerResponse struct {
	ID               uuid.UUID                 `json:"practitioner_uuid"`
	PracticeID       uuid.UUID                 `json:"practice_uuid"`
	Name             string                    `json:"practitioner_name"`
	Email            string                    `json:"practitioner_email,omitempty"`
	Phone            string                    `json:"practitioner_phone,omitempty"`
	Specialty        string                    `json:"specialty,omitempty"`
	Address          string                    `json:"practitioner_address,omitempty"`
	City             string                    `json:"practitioner_city,omitempty"`
	State            string                    `json:"practitioner_state,omitempty"`
	Zip              string                    `json:"practitioner_zip,omitempty"`
	IsActive         bool                      `json:"is_active"`
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type PractitionerListResponse struct {
	Practitioners []PractitionerResponse `json:"practitioners"`
	Total         int                    `json:"total"`
}
