package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterPatientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FirstName   string `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required,isodate"` // Format: YYYY-MM-DD
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Gender      string `json:"gender" validate:"omitempty,max=20"`
}

type RegisterPracticeUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID `json:"patient_uuid"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type PatientLoginResponse struct {
	Token     string    `json:"token"`
	PatientID uuid.UUID `json:"patient_uuid"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	ExpiresIn int64     `json:"expires_in"`
}

type PracticeUserResponse struct {
	ID        uuid.UUID `json:"user_uuid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type PracticeLoginResponse struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_uuid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresIn int64     `json:"expires_in"`
}
