package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateBookingRequest carries raw strings; required fields are checked by
// the booking usecase in a fixed order so the first missing one is reported.
type CreateBookingRequest struct {
	AppointmentType string `json:"appointment_type"`
	BookingDate     string `json:"booking_date"` // Format: YYYY-MM-DD
	BookingSlot     string `json:"booking_slot"`
	Notes           string `json:"booking_notes"`
}

// Response DTOs

type BookingConfirmationResponse struct {
	BookingID        uuid.UUID `json:"booking_id"`
	PatientName      string    `json:"patient_name"`
	PractitionerName string    `json:"practitioner_name"`
	BookingDate      string    `json:"booking_date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Message          string    `json:"message"`
}

type BookingResponse struct {
	ID                 uuid.UUID `json:"booking_id"`
	PatientID          uuid.UUID `json:"patient_uuid"`
	PatientName        string    `json:"patient_name,omitempty"`
	PractitionerID     uuid.UUID `json:"practitioner_uuid"`
	PractitionerName   string    `json:"practitioner_name,omitempty"`
	AppointmentTypeID  uuid.UUID `json:"appointment_type_uuid"`
	AppointmentType    string    `json:"appointment_type,omitempty"`
	AvailabilitySlotID uuid.UUID `json:"availability_uuid"`
	BookingDate        string    `json:"booking_date"`
	DayOfWeek          string    `json:"day_of_week,omitempty"`
	StartTime          string    `json:"start_time,omitempty"`
	EndTime            string    `json:"end_time,omitempty"`
	Notes              string    `json:"booking_notes,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
