package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is an append-only trail entry for registry, availability and booking changes.
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   *uuid.UUID `gorm:"type:uuid;index" json:"actor_id,omitempty"`
	ActorType string     `gorm:"type:varchar(20);not null" json:"actor_type"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

const (
	ActorTypePractice = "practice_user"
	ActorTypePatient  = "patient"
)

// Common audit actions
const (
	AuditActionPracticeSetup       = "practice.setup"
	AuditActionPracticeUpdate      = "practice.update"
	AuditActionPractitionerCreate  = "practitioner.create"
	AuditActionPractitionerUpdate  = "practitioner.update"
	AuditActionPractitionerDelete  = "practitioner.delete"
	AuditActionAppointmentTypeSave = "appointment_type.save"
	AuditActionSlotCreate          = "availability.create"
	AuditActionSlotUpdate          = "availability.update"
	AuditActionSlotDelete          = "availability.delete"
	AuditActionBookingCreate       = "booking.create"
	AuditActionBookingCancel       = "booking.cancel"
)
