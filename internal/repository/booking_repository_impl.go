package repository

import (
	"errors"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Omit("Patient", "Practitioner", "AppointmentType", "AvailabilitySlot").Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.withDetails(db).Where("bookings.id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.withDetails(db).
		Where("patient_id = ?", patientID).
		Order("booking_date DESC, created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByPracticeID returns every booking made with the practice's practitioners,
// optionally narrowed to one calendar date.
func (r *bookingRepository) FindByPracticeID(db *gorm.DB, practiceID uuid.UUID, date *entity.Date) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := r.withDetails(db).
		Joins("JOIN practitioners ON practitioners.id = bookings.practitioner_id").
		Where("practitioners.practice_id = ?", practiceID)

	if date != nil {
		query = query.Where("bookings.booking_date = ?", *date)
	}

	err := query.Order("bookings.booking_date ASC, bookings.created_at ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveByPractitionerOnDate(db *gorm.DB, practitionerID uuid.UUID, date entity.Date) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("practitioner_id = ? AND booking_date = ? AND is_active = ?", practitionerID, date, true).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindActiveSlotIDsBetween lists the slots consumed by active bookings with
// booking_date in [from, to].
func (r *bookingRepository) FindActiveSlotIDsBetween(db *gorm.DB, practitionerID uuid.UUID, from, to entity.Date) ([]uuid.UUID, error) {
	var slotIDs []uuid.UUID
	err := db.Model(&entity.Booking{}).
		Where("practitioner_id = ? AND is_active = ?", practitionerID, true).
		Where("booking_date >= ? AND booking_date <= ?", from, to).
		Distinct().
		Pluck("availability_slot_id", &slotIDs).Error
	if err != nil {
		return nil, err
	}
	return slotIDs, nil
}

func (r *bookingRepository) ExistsActiveForSlotBetween(db *gorm.DB, slotID uuid.UUID, from, to entity.Date) (bool, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("availability_slot_id = ? AND is_active = ?", slotID, true).
		Where("booking_date >= ? AND booking_date <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CancelBooking atomically cancels a booking ONLY if it is still active.
// Returns affected rows: 1 = success, 0 = already cancelled (prevents double-cancel race).
func (r *bookingRepository) CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{"is_active": false, "is_deleted": true})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient").
		Preload("Practitioner").
		Preload("AppointmentType").
		Preload("AvailabilitySlot")
}
