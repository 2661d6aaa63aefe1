package repository

import (
	"practice-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindByActorID(db *gorm.DB, actorID uuid.UUID, limit, offset int) ([]entity.AuditLog, int64, error)
}
