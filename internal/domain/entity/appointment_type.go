package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AppointmentType is a catalog entry such as "new patient, in person, 30 min".
// The catalog is global: there is no owning practice column.
type AppointmentType struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ConsultationType string          `gorm:"type:varchar(100);not null" json:"type_of_consultation"`
	PatientType      string          `gorm:"type:varchar(100);not null" json:"appointment_patient_type"`
	DurationMinutes  int             `gorm:"not null" json:"appointment_patient_duration"`
	Description      string          `gorm:"type:text" json:"appointment_description,omitempty"`
	Fee              decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	IsEnabled        bool            `gorm:"not null" json:"is_appointment_enabled"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentType) TableName() string {
	return "appointment_types"
}

func (a *AppointmentType) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
