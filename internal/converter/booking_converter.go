package converter

import (
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO.
// Display fields are filled only when the relation was preloaded.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                 booking.ID,
		PatientID:          booking.PatientID,
		PractitionerID:     booking.PractitionerID,
		AppointmentTypeID:  booking.AppointmentTypeID,
		AvailabilitySlotID: booking.AvailabilitySlotID,
		BookingDate:        booking.BookingDate.String(),
		Notes:              booking.Notes,
		IsActive:           booking.IsActive,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.Patient.ID != uuid.Nil {
		response.PatientName = booking.Patient.DisplayName()
	}
	if booking.Practitioner.ID != uuid.Nil {
		response.PractitionerName = booking.Practitioner.Name
	}
	if booking.AppointmentType.ID != uuid.Nil {
		response.AppointmentType = booking.AppointmentType.ConsultationType
	}
	if booking.AvailabilitySlot.ID != uuid.Nil {
		response.DayOfWeek = booking.AvailabilitySlot.DayOfWeek.String()
		response.StartTime = booking.AvailabilitySlot.StartTime.String()
		response.EndTime = booking.AvailabilitySlot.EndTime.String()
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
