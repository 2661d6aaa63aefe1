package usecase

import (
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPracticeNotSetUp     = newError(ErrNotFound, "Practice has not been set up for this account")
	ErrPractitionerNotFound = newError(ErrNotFound, "Practitioner not found")
)

// ownership resolves what a practice user is allowed to touch. Anything
// outside the caller's own practice is reported as not found.
type ownership struct {
	log              *logrus.Logger
	practiceRepo     repository.PracticeRepository
	practitionerRepo repository.PractitionerRepository
}

func (o ownership) ownedPractice(db *gorm.DB, ownerID uuid.UUID) (*entity.Practice, error) {
	practice, err := o.practiceRepo.FindByOwnerID(db, ownerID)
	if err != nil {
		o.log.Warnf("Failed to find practice for owner %s: %+v", ownerID, err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotSetUp
	}
	return practice, nil
}

// ownedPractitioner returns an active practitioner on the owner's roster.
func (o ownership) ownedPractitioner(db *gorm.DB, ownerID, practitionerID uuid.UUID) (*entity.Practice, *entity.Practitioner, error) {
	practice, err := o.ownedPractice(db, ownerID)
	if err != nil {
		return nil, nil, err
	}

	practitioner, err := o.practitionerRepo.FindByID(db, practitionerID)
	if err != nil {
		o.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return nil, nil, err
	}
	if practitioner == nil || !practitioner.IsActive || !practitioner.BelongsTo(practice.ID) {
		return nil, nil, ErrPractitionerNotFound
	}
	return practice, practitioner, nil
}
