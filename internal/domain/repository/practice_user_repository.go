package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PracticeUserRepository interface {
	Create(db *gorm.DB, user *entity.PracticeUser) error
	FindByEmail(db *gorm.DB, email string) (*entity.PracticeUser, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PracticeUser, error)
}
