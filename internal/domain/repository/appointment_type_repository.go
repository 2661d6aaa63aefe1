package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentTypeRepository interface {
	Create(db *gorm.DB, appointmentType *entity.AppointmentType) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AppointmentType, error)
	FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.AppointmentType, error)
	FindAll(db *gorm.DB) ([]entity.AppointmentType, error)
	Update(db *gorm.DB, appointmentType *entity.AppointmentType) error
}
