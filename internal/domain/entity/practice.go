package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Practice is a clinic profile owned by exactly one practice user.
// Contact, location and facility details are free-form JSON blobs.
type Practice struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"practice_name"`
	PhoneNumber      string    `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	Website          string    `gorm:"type:varchar(255)" json:"practice_website,omitempty"`
	Accreditation    string    `gorm:"type:varchar(255)" json:"practice_accreditation,omitempty"`
	About            string    `gorm:"type:text" json:"about_practice,omitempty"`
	SocialMediaLinks JSON      `gorm:"type:jsonb" json:"social_media_links,omitempty"`
	Facilities       JSON      `gorm:"type:jsonb" json:"facilities,omitempty"`
	OpeningHours     JSON      `gorm:"type:jsonb" json:"opening_hours,omitempty"`
	Location         JSON      `gorm:"type:jsonb" json:"practice_location,omitempty"`
	WheelchairAccess *bool     `json:"wheel_chair_access,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner         PracticeUser   `gorm:"foreignKey:OwnerID" json:"-"`
	Practitioners []Practitioner `gorm:"foreignKey:PracticeID" json:"practitioners,omitempty"`
}

func (Practice) TableName() string {
	return "practices"
}

func (p *Practice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
