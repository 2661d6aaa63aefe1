package usecase

import (
	"context"
	"errors"
	"fmt"

	"practice-booking-service/internal/converter"
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"
	"practice-booking-service/internal/metrics"
	"practice-booking-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound     = newError(ErrNotFound, "Availability slot not found")
	ErrSlotInvalidRange = newError(ErrInvalidRange, "Start time must be before end time")
	ErrSlotBusy         = newError(ErrConflict, "Availability for this practitioner is being changed, please retry")
)

// overlapError names the existing slot a write collided with.
func overlapError(existing *entity.AvailabilitySlot) error {
	return newError(ErrOverlap, fmt.Sprintf(
		"Time slot overlaps with existing slot %s-%s on %s",
		existing.StartTime, existing.EndTime, existing.DayOfWeek,
	))
}

// AvailabilityUsecase manages the weekly slot templates of practitioners.
// Writes for one (practitioner, weekday) are serialised by a Redis lock and
// run in a single transaction, so the overlap check and the write cannot
// interleave with a competing writer.
type AvailabilityUsecase interface {
	AddSlot(ctx context.Context, ownerID, practitionerID uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilitySlotResponse, error)
	EditSlot(ctx context.Context, ownerID, slotID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilitySlotResponse, error)
	DeleteSlot(ctx context.Context, ownerID, slotID uuid.UUID) error
	ListSlots(ctx context.Context, ownerID, practitionerID uuid.UUID) (*dto.AvailabilityListResponse, error)
}

type availabilityUsecase struct {
	ownership
	db           *gorm.DB
	slotRepo     repository.AvailabilitySlotRepository
	locker       service.Locker
	auditService service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practiceRepo repository.PracticeRepository,
	practitionerRepo repository.PractitionerRepository,
	slotRepo repository.AvailabilitySlotRepository,
	locker service.Locker,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		ownership: ownership{
			log:              log,
			practiceRepo:     practiceRepo,
			practitionerRepo: practitionerRepo,
		},
		db:           db,
		slotRepo:     slotRepo,
		locker:       locker,
		auditService: auditService,
	}
}

func (u *availabilityUsecase) AddSlot(ctx context.Context, ownerID, practitionerID uuid.UUID, req *dto.CreateAvailabilityRequest) (*dto.AvailabilitySlotResponse, error) {
	if _, _, err := u.ownedPractitioner(u.db.WithContext(ctx), ownerID, practitionerID); err != nil {
		return nil, err
	}

	slot, err := parseSlot(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		metrics.IncSlotRejection("validation")
		return nil, err
	}
	slot.PractitionerID = practitionerID
	slot.IsActive = true

	if !slot.ValidRange() {
		metrics.IncSlotRejection("invalid_range")
		return nil, ErrSlotInvalidRange
	}

	err = u.withDayLock(ctx, practitionerID, slot.DayOfWeek, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		if err := u.checkOverlap(tx, slot); err != nil {
			return err
		}

		if err := u.slotRepo.Create(tx, slot); err != nil {
			if isDuplicateKeyError(err, "availability_slots_active") {
				return newError(ErrOverlap, "Time slot overlaps with an existing slot")
			}
			u.log.Warnf("Failed to create availability slot: %+v", err)
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionSlotCreate, "availability_slot", slot.ID.String(), converter.AvailabilitySlotToResponse(slot)); err != nil {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOverlap) {
			metrics.IncSlotRejection("overlap")
		}
		return nil, err
	}

	metrics.IncSlotCreated()
	u.log.Infof("Availability slot created: id=%s, practitioner=%s, %s %s-%s", slot.ID, practitionerID, slot.DayOfWeek, slot.StartTime, slot.EndTime)
	return converter.AvailabilitySlotToResponse(slot), nil
}

// EditSlot applies a partial patch and re-validates the resulting slot
// against every other active slot on its (possibly new) weekday.
func (u *availabilityUsecase) EditSlot(ctx context.Context, ownerID, slotID uuid.UUID, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilitySlotResponse, error) {
	current, err := u.ownedSlot(u.db.WithContext(ctx), ownerID, slotID)
	if err != nil {
		return nil, err
	}

	day := current.DayOfWeek
	if req.DayOfWeek != nil {
		if day, err = entity.ParseDayOfWeek(*req.DayOfWeek); err != nil {
			metrics.IncSlotRejection("validation")
			return nil, invalidField("day_of_week", err)
		}
	}

	var updated *entity.AvailabilitySlot
	err = u.withDayLock(ctx, current.PractitionerID, day, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		// Re-read inside the lock; the row may have changed since the ownership check.
		slot, err := u.slotRepo.FindByID(tx, slotID)
		if err != nil {
			u.log.Warnf("Failed to find availability slot %s: %+v", slotID, err)
			return err
		}
		if slot == nil {
			return ErrSlotNotFound
		}
		before := converter.AvailabilitySlotToResponse(slot)

		if err := applySlotPatch(slot, day, req); err != nil {
			return err
		}
		if !slot.ValidRange() {
			return ErrSlotInvalidRange
		}
		if slot.IsActive {
			if err := u.checkOverlap(tx, slot); err != nil {
				return err
			}
		}

		if err := u.slotRepo.Update(tx, slot); err != nil {
			if isDuplicateKeyError(err, "availability_slots_active") {
				return newError(ErrOverlap, "Time slot overlaps with an existing slot")
			}
			u.log.Warnf("Failed to update availability slot %s: %+v", slotID, err)
			return err
		}

		after := converter.AvailabilitySlotToResponse(slot)
		if err := u.auditService.LogUpdate(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionSlotUpdate, "availability_slot", slotID.String(), before, after); err != nil {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return err
		}
		updated = slot
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOverlap):
			metrics.IncSlotRejection("overlap")
		case errors.Is(err, ErrInvalidRange):
			metrics.IncSlotRejection("invalid_range")
		case errors.Is(err, ErrValidation):
			metrics.IncSlotRejection("validation")
		}
		return nil, err
	}

	return converter.AvailabilitySlotToResponse(updated), nil
}

// DeleteSlot is a soft delete. Bookings that already reference the slot keep
// pointing at the retained row.
func (u *availabilityUsecase) DeleteSlot(ctx context.Context, ownerID, slotID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.ownedSlot(tx, ownerID, slotID)
	if err != nil {
		return err
	}

	affected, err := u.slotRepo.Deactivate(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to deactivate availability slot %s: %+v", slotID, err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, service.PracticeActor(ownerID), entity.AuditActionSlotDelete, "availability_slot", slotID.String(), converter.AvailabilitySlotToResponse(slot)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Availability slot deactivated: id=%s", slotID)
	return nil
}

func (u *availabilityUsecase) ListSlots(ctx context.Context, ownerID, practitionerID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	db := u.db.WithContext(ctx)

	if _, _, err := u.ownedPractitioner(db, ownerID, practitionerID); err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindActiveByPractitionerID(db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find availability slots of practitioner %s: %+v", practitionerID, err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Slots: converter.AvailabilitySlotsToResponses(slots),
		Total: len(slots),
	}, nil
}

// ownedSlot loads a slot whose practitioner is on the owner's roster.
func (u *availabilityUsecase) ownedSlot(db *gorm.DB, ownerID, slotID uuid.UUID) (*entity.AvailabilitySlot, error) {
	slot, err := u.slotRepo.FindByID(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find availability slot %s: %+v", slotID, err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if _, _, err := u.ownedPractitioner(db, ownerID, slot.PractitionerID); err != nil {
		if errors.Is(err, ErrPractitionerNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}

// checkOverlap rejects slot if it intersects any other active slot of the
// same practitioner and weekday. Intervals are half-open, so back-to-back
// slots are allowed.
func (u *availabilityUsecase) checkOverlap(tx *gorm.DB, slot *entity.AvailabilitySlot) error {
	existing, err := u.slotRepo.FindActiveByPractitionerAndDay(tx, slot.PractitionerID, slot.DayOfWeek)
	if err != nil {
		u.log.Warnf("Failed to find availability slots for overlap check: %+v", err)
		return err
	}

	for i := range existing {
		if existing[i].ID == slot.ID {
			continue
		}
		if slot.Overlaps(&existing[i]) {
			return overlapError(&existing[i])
		}
	}
	return nil
}

func (u *availabilityUsecase) withDayLock(ctx context.Context, practitionerID uuid.UUID, day entity.DayOfWeek, fn func(ctx context.Context) error) error {
	err := u.locker.WithLock(ctx, service.AvailabilityLockKey(practitionerID, day), fn)
	if errors.Is(err, service.ErrLockNotAcquired) {
		metrics.IncSlotRejection("busy")
		return ErrSlotBusy
	}
	return err
}

func parseSlot(day, start, end string) (*entity.AvailabilitySlot, error) {
	if day == "" {
		return nil, missingField("day_of_week")
	}
	if start == "" {
		return nil, missingField("start_time")
	}
	if end == "" {
		return nil, missingField("end_time")
	}

	dayOfWeek, err := entity.ParseDayOfWeek(day)
	if err != nil {
		return nil, invalidField("day_of_week", err)
	}
	startTime, err := entity.ParseClockTime(start)
	if err != nil {
		return nil, invalidField("start_time", err)
	}
	endTime, err := entity.ParseClockTime(end)
	if err != nil {
		return nil, invalidField("end_time", err)
	}

	return &entity.AvailabilitySlot{
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

func applySlotPatch(slot *entity.AvailabilitySlot, day entity.DayOfWeek, req *dto.UpdateAvailabilityRequest) error {
	slot.DayOfWeek = day
	if req.StartTime != nil {
		start, err := entity.ParseClockTime(*req.StartTime)
		if err != nil {
			return invalidField("start_time", err)
		}
		slot.StartTime = start
	}
	if req.EndTime != nil {
		end, err := entity.ParseClockTime(*req.EndTime)
		if err != nil {
			return invalidField("end_time", err)
		}
		slot.EndTime = end
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}
	return nil
}
