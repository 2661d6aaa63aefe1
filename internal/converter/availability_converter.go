package converter

import (
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
)

// AvailabilitySlotToResponse converts an AvailabilitySlot entity to AvailabilitySlotResponse DTO
func AvailabilitySlotToResponse(slot *entity.AvailabilitySlot) *dto.AvailabilitySlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.AvailabilitySlotResponse{
		ID:             slot.ID,
		PractitionerID: slot.PractitionerID,
		DayOfWeek:      slot.DayOfWeek.String(),
		StartTime:      slot.StartTime.String(),
		EndTime:        slot.EndTime.String(),
		IsActive:       slot.IsActive,
		CreatedAt:      slot.CreatedAt,
		UpdatedAt:      slot.UpdatedAt,
	}
}

func AvailabilitySlotsToResponses(slots []entity.AvailabilitySlot) []dto.AvailabilitySlotResponse {
	responses := make([]dto.AvailabilitySlotResponse, len(slots))
	for i := range slots {
		responses[i] = *AvailabilitySlotToResponse(&slots[i])
	}
	return responses
}
