package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilitySlotRepository interface {
	Create(db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailabilitySlot, error)
	FindActiveByPractitionerID(db *gorm.DB, practitionerID uuid.UUID) ([]entity.AvailabilitySlot, error)
	FindActiveByPractitionerAndDay(db *gorm.DB, practitionerID uuid.UUID, day entity.DayOfWeek) ([]entity.AvailabilitySlot, error)
	Update(db *gorm.DB, slot *entity.AvailabilitySlot) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
