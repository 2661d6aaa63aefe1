package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PractitionerRepository interface {
	Create(db *gorm.DB, practitioner *entity.Practitioner) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error)
	FindActiveByPracticeID(db *gorm.DB, practiceID uuid.UUID) ([]entity.Practitioner, error)
	Update(db *gorm.DB, practitioner *entity.Practitioner) error
	ReplaceAppointmentTypes(db *gorm.DB, practitioner *entity.Practitioner, types []entity.AppointmentType) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
