package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlot is a recurring weekly window in which a practitioner can
// be booked. It carries no calendar date; bookings bind it to one.
type AvailabilitySlot struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index:idx_availability_slots_practitioner_day" json:"practitioner_id"`
	DayOfWeek      DayOfWeek `gorm:"type:varchar(10);not null;index:idx_availability_slots_practitioner_day" json:"day_of_week"`
	StartTime      ClockTime `gorm:"type:time;not null" json:"start_time"`
	EndTime        ClockTime `gorm:"type:time;not null" json:"end_time"`
	IsActive       bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Practitioner Practitioner `gorm:"foreignKey:PractitionerID" json:"-"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ValidRange reports whether the slot starts strictly before it ends.
func (s *AvailabilitySlot) ValidRange() bool {
	return s.StartTime < s.EndTime
}

// Overlaps uses half-open intervals: slots that only touch do not overlap.
func (s *AvailabilitySlot) Overlaps(other *AvailabilitySlot) bool {
	return s.DayOfWeek == other.DayOfWeek &&
		s.StartTime < other.EndTime &&
		s.EndTime > other.StartTime
}

// SortKey orders slots by calendar weekday, then start time.
func (s *AvailabilitySlot) SortKey() int {
	return s.DayOfWeek.Index()*minutesPerDay + int(s.StartTime)
}
