package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Practitioner is a doctor or other staff member bookable at a practice.
// PracticeID never changes after creation; deletion only clears IsActive.
type Practitioner struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PracticeID uuid.UUID `gorm:"type:uuid;not null;index" json:"practice_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"practitioner_name"`
	Email      string    `gorm:"type:varchar(255)" json:"practitioner_email,omitempty"`
	Phone      string    `gorm:"type:varchar(50)" json:"practitioner_phone,omitempty"`
	Specialty  string    `gorm:"type:varchar(120)" json:"specialty,omitempty"`
	Address    string    `gorm:"type:varchar(255)" json:"practitioner_address,omitempty"`
	City       string    `gorm:"type:varchar(100)" json:"practitioner_city,omitempty"`
	State      string    `gorm:"type:varchar(100)" json:"practitioner_state,omitempty"`
	Zip        string    `gorm:"type:varchar(20)" json:"practitioner_zip,omitempty"`
	IsActive   bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Practice         Practice           `gorm:"foreignKey:PracticeID" json:"-"`
	AppointmentTypes []AppointmentType  `gorm:"many2many:practitioner_appointment_types" json:"appointment_types,omitempty"`
	Slots            []AvailabilitySlot `gorm:"foreignKey:PractitionerID" json:"slots,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}

func (p *Practitioner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BelongsTo reports whether the practitioner is on the given practice's roster.
func (p *Practitioner) BelongsTo(practiceID uuid.UUID) bool {
	return p.PracticeID == practiceID
}
