package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeUser is the practice-side login identity that owns a practice.
type PracticeUser struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	IsActive   bool      `gorm:"not null;index" json:"is_active"`
	IsVerified bool      `gorm:"not null" json:"is_verified"`
	IsDeleted  bool      `gorm:"not null" json:"is_deleted"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PracticeUser) TableName() string {
	return "practice_users"
}

func (u *PracticeUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *PracticeUser) CanLogin() bool {
	return u.IsActive && !u.IsDeleted
}
