package repository

import (
	"errors"
	"sort"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilitySlotRepository struct{}

func NewAvailabilitySlotRepository() domainRepo.AvailabilitySlotRepository {
	return &availabilitySlotRepository{}
}

func (r *availabilitySlotRepository) Create(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.Omit("Practitioner").Create(slot).Error
}

func (r *availabilitySlotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	var slot entity.AvailabilitySlot
	err := db.Preload("Practitioner").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindActiveByPractitionerID returns active slots in calendar order
// (Monday first), then by start time. day_of_week is stored as a name, so
// the weekday ordering is applied here rather than in SQL.
func (r *availabilitySlotRepository) FindActiveByPractitionerID(db *gorm.DB, practitionerID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.Where("practitioner_id = ? AND is_active = ?", practitionerID, true).Find(&slots).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].SortKey() < slots[j].SortKey()
	})
	return slots, nil
}

func (r *availabilitySlotRepository) FindActiveByPractitionerAndDay(db *gorm.DB, practitionerID uuid.UUID, day entity.DayOfWeek) ([]entity.AvailabilitySlot, error) {
	var slots []entity.AvailabilitySlot
	err := db.Where("practitioner_id = ? AND day_of_week = ? AND is_active = ?", practitionerID, day, true).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *availabilitySlotRepository) Update(db *gorm.DB, slot *entity.AvailabilitySlot) error {
	return db.Omit("Practitioner").Save(slot).Error
}

func (r *availabilitySlotRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.AvailabilitySlot{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
