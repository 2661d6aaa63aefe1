package repository

import (
	"errors"

	"practice-booking-service/internal/domain/entity"
	domainRepo "practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type practiceUserRepository struct{}

func NewPracticeUserRepository() domainRepo.PracticeUserRepository {
	return &practiceUserRepository{}
}

func (r *practiceUserRepository) Create(db *gorm.DB, user *entity.PracticeUser) error {
	return db.Create(user).Error
}

func (r *practiceUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.PracticeUser, error) {
	var user entity.PracticeUser
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *practiceUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PracticeUser, error) {
	var user entity.PracticeUser
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
