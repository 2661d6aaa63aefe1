package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeRepository interface {
	Create(db *gorm.DB, practice *entity.Practice) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Practice, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) (*entity.Practice, error)
	FindAll(db *gorm.DB) ([]entity.Practice, error)
	Update(db *gorm.DB, practice *entity.Practice) error
}
