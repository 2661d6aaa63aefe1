package converter

import (
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:          patient.ID,
		Email:       patient.Email,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: patient.DateOfBirth.String(),
		PhoneNumber: patient.PhoneNumber,
		Gender:      patient.Gender,
		CreatedAt:   patient.CreatedAt,
	}
}

func PracticeUserToResponse(user *entity.PracticeUser) *dto.PracticeUserResponse {
	if user == nil {
		return nil
	}

	return &dto.PracticeUserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
