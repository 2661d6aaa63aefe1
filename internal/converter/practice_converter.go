package converter

import (
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
)

// PracticeToResponse converts a Practice entity to PracticeResponse DTO
func PracticeToResponse(practice *entity.Practice) *dto.PracticeResponse {
	if practice == nil {
		return nil
	}

	return &dto.PracticeResponse{
		ID:               practice.ID,
		OwnerID:          practice.OwnerID,
		Name:             practice.Name,
		PhoneNumber:      practice.PhoneNumber,
		Website:          practice.Website,
		Accreditation:    practice.Accreditation,
		About:            practice.About,
		SocialMediaLinks: practice.SocialMediaLinks,
		Facilities:       practice.Facilities,
		OpeningHours:     practice.OpeningHours,
		Location:         practice.Location,
		WheelchairAccess: practice.WheelchairAccess,
		CreatedAt:        practice.CreatedAt,
		UpdatedAt:        practice.UpdatedAt,
	}
}

func PracticesToResponses(practices []entity.Practice) []dto.PracticeResponse {
	responses := make([]dto.PracticeResponse, len(practices))
	for i := range practices {
		responses[i] = *PracticeToResponse(&practices[i])
	}
	return responses
}

// PractitionerToResponse converts a Practitioner entity to PractitionerResponse DTO.
// AppointmentTypes is always a non-nil slice so clients get [] rather than null.
func PractitionerToResponse(practitioner *entity.Practitioner) *dto.PractitionerResponse {
	if practitioner == nil {
		return nil
	}

	return &dto.PractitionerResponse{
		ID:               practitioner.ID,
		PracticeID:       practitioner.PracticeID,
		Name:             practitioner.Name,
		Email:            practitioner.Email,
		Phone:            practitioner.Phone,
		Specialty:        practitioner.Specialty,
		Address:          practitioner.Address,
		City:             practitioner.City,
		State:            practitioner.State,
		Zip:              practitioner.Zip,
		IsActive:         practitioner.IsActive,
		AppointmentTypes: AppointmentTypesToResponses(practitioner.AppointmentTypes),
		CreatedAt:        practitioner.CreatedAt,
		UpdatedAt:        practitioner.UpdatedAt,
	}
}

func PractitionersToResponses(practitioners []entity.Practitioner) []dto.PractitionerResponse {
	responses := make([]dto.PractitionerResponse, len(practitioners))
	for i := range practitioners {
		responses[i] = *PractitionerToResponse(&practitioners[i])
	}
	return responses
}

func AppointmentTypeToResponse(appointmentType *entity.AppointmentType) *dto.AppointmentTypeResponse {
	if appointmentType == nil {
		return nil
	}

	return &dto.AppointmentTypeResponse{
		ID:               appointmentType.ID,
		ConsultationType: appointmentType.ConsultationType,
		PatientType:      appointmentType.PatientType,
		DurationMinutes:  appointmentType.DurationMinutes,
		Description:      appointmentType.Description,
		Fee:              appointmentType.Fee,
		IsEnabled:        appointmentType.IsEnabled,
		CreatedAt:        appointmentType.CreatedAt,
		UpdatedAt:        appointmentType.UpdatedAt,
	}
}

func AppointmentTypesToResponses(types []entity.AppointmentType) []dto.AppointmentTypeResponse {
	responses := make([]dto.AppointmentTypeResponse, len(types))
	for i := range types {
		responses[i] = *AppointmentTypeToResponse(&types[i])
	}
	return responses
}
