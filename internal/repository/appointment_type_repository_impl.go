package repository

import (
	"errors"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentTypeRepository struct{}

func NewAppointmentTypeRepository() domainRepo.AppointmentTypeRepository {
	return &appointmentTypeRepository{}
}

func (r *appointmentTypeRepository) Create(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Create(appointmentType).Error
}

func (r *appointmentTypeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AppointmentType, error) {
	var appointmentType entity.AppointmentType
	err := db.Where("id = ?", id).First(&appointmentType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointmentType, nil
}

func (r *appointmentTypeRepository) FindByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.AppointmentType, error) {
	var types []entity.AppointmentType
	if len(ids) == 0 {
		return types, nil
	}
	err := db.Where("id IN ?", ids).Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *appointmentTypeRepository) FindAll(db *gorm.DB) ([]entity.AppointmentType, error) {
	var types []entity.AppointmentType
	err := db.Order("consultation_type ASC, duration_minutes ASC").Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *appointmentTypeRepository) Update(db *gorm.DB, appointmentType *entity.AppointmentType) error {
	return db.Save(appointmentType).Error
}
