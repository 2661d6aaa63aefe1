package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error)
	FindByPracticeID(db *gorm.DB, practiceID uuid.UUID, date *entity.Date) ([]entity.Booking, error)
	FindActiveByPractitionerOnDate(db *gorm.DB, practitionerID uuid.UUID, date entity.Date) ([]entity.Booking, error)
	FindActiveSlotIDsBetween(db *gorm.DB, practitionerID uuid.UUID, from, to entity.Date) ([]uuid.UUID, error)
	ExistsActiveForSlotBetween(db *gorm.DB, slotID uuid.UUID, from, to entity.Date) (bool, error)
	CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error)
}
