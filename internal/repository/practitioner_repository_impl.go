package repository

import (
	"errors"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type practitionerRepository struct{}

func NewPractitionerRepository() domainRepo.PractitionerRepository {
	return &practitionerRepository{}
}

func (r *practitionerRepository) Create(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Omit("Practice", "AppointmentTypes", "Slots").Create(practitioner).Error
}

func (r *practitionerRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error) {
	var practitioner entity.Practitioner
	err := db.Preload("AppointmentTypes").Where("id = ?", id).First(&practitioner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practitioner, nil
}

func (r *practitionerRepository) FindActiveByPracticeID(db *gorm.DB, practiceID uuid.UUID) ([]entity.Practitioner, error) {
	var practitioners []entity.Practitioner
	err := db.Preload("AppointmentTypes").
		Where("practice_id = ? AND is_active = ?", practiceID, true).
		Order("name ASC").
		Find(&practitioners).Error
	if err != nil {
		return nil, err
	}
	return practitioners, nil
}

// Update saves profile fields only. practice_id is never rewritten.
func (r *practitionerRepository) Update(db *gorm.DB, practitioner *entity.Practitioner) error {
	return db.Omit("Practice", "AppointmentTypes", "Slots", "practice_id").Save(practitioner).Error
}

func (r *practitionerRepository) ReplaceAppointmentTypes(db *gorm.DB, practitioner *entity.Practitioner, types []entity.AppointmentType) error {
	return db.Model(practitioner).Association("AppointmentTypes").Replace(types)
}

func (r *practitionerRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Practitioner{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
