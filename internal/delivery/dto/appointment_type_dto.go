package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentTypeRequest struct {
	ConsultationType string           `json:"type_of_consultation" validate:"required,max=100"`
	PatientType      string           `json:"appointment_patient_type" validate:"required,max=100"`
	DurationMinutes  int              `json:"appointment_patient_duration" validate:"required,gte=5,lte=480"`
	Description      string           `json:"appointment_description" validate:"omitempty"`
	Fee              *decimal.Decimal `json:"fee"`
	IsEnabled        *bool            `json:"is_appointment_enabled"`
}

type UpdateAppointmentTypeRequest struct {
	ConsultationType *string          `json:"type_of_consultation" validate:"omitempty,max=100"`
	PatientType      *string          `json:"appointment_patient_type" validate:"omitempty,max=100"`
	DurationMinutes  *int             `json:"appointment_patient_duration" validate:"omitempty,gte=5,lte=480"`
	Description      *string          `json:"appointment_description"`
	Fee              *decimal.Decimal `json:"fee"`
	IsEnabled        *bool            `json:"is_appointment_enabled"`
}

// Response DTOs

type AppointmentTypeResponse struct {
	ID               uuid.UUID       `json:"appointment_type_uuid"`
	ConsultationType string          `json:"type_of_consultation"`
	PatientType      string          `json:"appointment_patient_type"`
	DurationMinutes  int             `json:"appointment_patient_duration"`
	Description      string          `json:"appointment_description,omitempty"`
	Fee              decimal.Decimal `json:"fee"`
	IsEnabled        bool            `json:"is_appointment_enabled"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type AppointmentTypeListResponse struct {
	AppointmentTypes []AppointmentTypeResponse `json:"appointment_types"`
	Total            int                       `json:"total"`
}
