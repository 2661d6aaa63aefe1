package repository

import (
	"errors"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type practiceRepository struct{}

func NewPracticeRepository() domainRepo.PracticeRepository {
	return &practiceRepository{}
}

func (r *practiceRepository) Create(db *gorm.DB, practice *entity.Practice) error {
	return db.Omit("Owner", "Practitioners").Create(practice).Error
}

func (r *practiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practice, error) {
	var practice entity.Practice
	err := db.Where("id = ?", id).First(&practice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practice, nil
}

func (r *practiceRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) (*entity.Practice, error) {
	var practice entity.Practice
	err := db.Where("owner_id = ?", ownerID).First(&practice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &practice, nil
}

func (r *practiceRepository) FindAll(db *gorm.DB) ([]entity.Practice, error) {
	var practices []entity.Practice
	err := db.Order("name ASC").Find(&practices).Error
	if err != nil {
		return nil, err
	}
	return practices, nil
}

func (r *practiceRepository) Update(db *gorm.DB, practice *entity.Practice) error {
	return db.Omit("Owner", "Practitioners").Save(practice).Error
}
