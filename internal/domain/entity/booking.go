package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking binds a weekly AvailabilitySlot to one concrete date for a patient.
// Cancelled bookings are kept with IsActive=false and IsDeleted=true.
type Booking struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID          uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	PractitionerID     uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_practitioner_date" json:"practitioner_id"`
	AppointmentTypeID  uuid.UUID `gorm:"type:uuid;not null" json:"appointment_type_id"`
	BookingDate        Date      `gorm:"type:date;not null;index:idx_bookings_practitioner_date" json:"booking_date"`
	AvailabilitySlotID uuid.UUID `gorm:"type:uuid;not null;index" json:"availability_slot_id"`
	Notes              string    `gorm:"type:text" json:"notes,omitempty"`
	IsActive           bool      `gorm:"not null;index" json:"is_active"`
	IsDeleted          bool      `gorm:"not null" json:"is_deleted"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient          Patient          `gorm:"foreignKey:PatientID" json:"-"`
	Practitioner     Practitioner     `gorm:"foreignKey:PractitionerID" json:"-"`
	AppointmentType  AppointmentType  `gorm:"foreignKey:AppointmentTypeID" json:"-"`
	AvailabilitySlot AvailabilitySlot `gorm:"foreignKey:AvailabilitySlotID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (b *Booking) IsCancelled() bool {
	return !b.IsActive || b.IsDeleted
}

// Cancel soft-deletes the booking, releasing its slot for the week.
func (b *Booking) Cancel() {
	b.IsActive = false
	b.IsDeleted = true
}
