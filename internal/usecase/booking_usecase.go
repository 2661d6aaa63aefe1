package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

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
	ErrBookingNotFound         = newError(ErrNotFound, "Booking not found")
	ErrBookingAlreadyCancelled = newError(ErrConflict, "Booking is already cancelled")
	ErrSlotAlreadyBooked       = newError(ErrConflict, "slot already booked for this week")
	ErrBookingBusy             = newError(ErrConflict, "Slot is being booked by someone else, please retry")
)

// PatientResolver turns a patient token into the patient it was issued to.
type PatientResolver interface {
	ResolvePatient(ctx context.Context, token string) (*entity.Patient, error)
}

type BookingUsecase interface {
	GetAvailability(ctx context.Context, practitionerID uuid.UUID, date string) (*dto.DailyAvailabilityResponse, error)
	BookAppointment(ctx context.Context, patientToken string, practitionerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingConfirmationResponse, error)
	ListPatientBookings(ctx context.Context, patientID uuid.UUID) (*dto.BookingListResponse, error)
	CancelBooking(ctx context.Context, patientID, bookingID uuid.UUID) error
	ListPracticeBookings(ctx context.Context, ownerID uuid.UUID, date string) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	ownership
	db                  *gorm.DB
	patients            PatientResolver
	appointmentTypeRepo repository.AppointmentTypeRepository
	slotRepo            repository.AvailabilitySlotRepository
	bookingRepo         repository.BookingRepository
	locker              service.Locker
	occupancy           *service.OccupancyCache
	auditService        service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patients PatientResolver,
	practiceRepo repository.PracticeRepository,
	practitionerRepo repository.PractitionerRepository,
	appointmentTypeRepo repository.AppointmentTypeRepository,
	slotRepo repository.AvailabilitySlotRepository,
	bookingRepo repository.BookingRepository,
	locker service.Locker,
	occupancy *service.OccupancyCache,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		ownership: ownership{
			log:              log,
			practiceRepo:     practiceRepo,
			practitionerRepo: practitionerRepo,
		},
		db:                  db,
		patients:            patients,
		appointmentTypeRepo: appointmentTypeRepo,
		slotRepo:            slotRepo,
		bookingRepo:         bookingRepo,
		locker:              locker,
		occupancy:           occupancy,
		auditService:        auditService,
	}
}

// GetAvailability evaluates every active weekly slot of the practitioner
// against a concrete date. A slot is unavailable when it has a booking on
// that date or anywhere in the Monday-start week containing it.
func (u *bookingUsecase) GetAvailability(ctx context.Context, practitionerID uuid.UUID, date string) (*dto.DailyAvailabilityResponse, error) {
	if strings.TrimSpace(date) == "" {
		return nil, missingField("date")
	}
	day, err := entity.ParseDate(date)
	if err != nil {
		return nil, invalidField("date", err)
	}

	db := u.db.WithContext(ctx)

	if _, err := u.activePractitioner(db, practitionerID); err != nil {
		return nil, err
	}

	slots, err := u.slotRepo.FindActiveByPractitionerID(db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find availability slots of practitioner %s: %+v", practitionerID, err)
		return nil, err
	}

	sameDay, err := u.bookingRepo.FindActiveByPractitionerOnDate(db, practitionerID, day)
	if err != nil {
		u.log.Warnf("Failed to find bookings of practitioner %s on %s: %+v", practitionerID, day, err)
		return nil, err
	}
	taken := make(map[uuid.UUID]struct{}, len(sameDay))
	for _, b := range sameDay {
		taken[b.AvailabilitySlotID] = struct{}{}
	}

	weekTaken, err := u.occupancy.WeekSlotIDs(ctx, practitionerID, day)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SlotAvailabilityResponse, 0, len(slots))
	for _, slot := range slots {
		_, bookedToday := taken[slot.ID]
		_, bookedThisWeek := weekTaken[slot.ID]
		result = append(result, dto.SlotAvailabilityResponse{
			ID:          slot.ID,
			DayOfWeek:   slot.DayOfWeek.String(),
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: !bookedToday && !bookedThisWeek,
			Date:        day.String(),
		})
	}

	return &dto.DailyAvailabilityResponse{
		PractitionerID: practitionerID,
		Date:           day.String(),
		DayOfWeek:      day.DayOfWeek().String(),
		WeekStart:      day.WeekStart().String(),
		Slots:          result,
	}, nil
}

func (u *bookingUsecase) BookAppointment(ctx context.Context, patientToken string, practitionerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingConfirmationResponse, error) {
	patient, err := u.patients.ResolvePatient(ctx, patientToken)
	if err != nil {
		metrics.IncBookingRejection("unauthorized")
		return nil, err
	}

	db := u.db.WithContext(ctx)

	practitioner, err := u.activePractitioner(db, practitionerID)
	if err != nil {
		metrics.IncBookingRejection("not_found")
		return nil, err
	}

	booking, slot, err := u.prepareBooking(db, practitioner, req)
	if err != nil {
		u.rejectBooking(err)
		return nil, err
	}
	booking.PatientID = patient.ID

	weekStart := booking.BookingDate.WeekStart()
	lockKey := service.BookingLockKey(practitionerID, slot.ID, weekStart)

	err = u.locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		tx := u.db.WithContext(ctx).Begin()
		defer tx.Rollback()

		taken, err := u.bookingRepo.ExistsActiveForSlotBetween(tx, slot.ID, weekStart, booking.BookingDate.WeekEnd())
		if err != nil {
			u.log.Warnf("Failed to check week occupancy of slot %s: %+v", slot.ID, err)
			return err
		}
		if taken {
			return ErrSlotAlreadyBooked
		}

		if err := u.bookingRepo.Create(tx, booking); err != nil {
			if isDuplicateKeyError(err, "bookings_active_slot") {
				return ErrSlotAlreadyBooked
			}
			u.log.Warnf("Failed to create booking: %+v", err)
			return err
		}

		if err := u.auditService.LogCreate(ctx, tx, service.PatientActor(patient.ID), entity.AuditActionBookingCreate, "booking", booking.ID.String(), converter.BookingToResponse(booking)); err != nil {
			return err
		}

		if err := tx.Commit().Error; err != nil {
			u.log.Warnf("Failed commit transaction: %+v", err)
			return err
		}
		return nil
	})
	if errors.Is(err, service.ErrLockNotAcquired) {
		err = ErrBookingBusy
	}
	if err != nil {
		u.rejectBooking(err)
		return nil, err
	}

	u.occupancy.Invalidate(ctx, practitionerID, booking.BookingDate)
	metrics.IncBookingCreated()
	u.log.Infof("Booking created: id=%s, patient=%s, practitioner=%s, date=%s, slot=%s", booking.ID, patient.ID, practitionerID, booking.BookingDate, slot.ID)

	return &dto.BookingConfirmationResponse{
		BookingID:        booking.ID,
		PatientName:      patient.DisplayName(),
		PractitionerName: practitioner.Name,
		BookingDate:      booking.BookingDate.String(),
		StartTime:        slot.StartTime.String(),
		EndTime:          slot.EndTime.String(),
		Message: fmt.Sprintf("Appointment booked successfully with %s on %s at %s",
			practitioner.Name, booking.BookingDate, slot.StartTime),
	}, nil
}

// prepareBooking validates the request in a fixed order: required fields,
// field formats, appointment type, slot, then the date against the slot's day.
func (u *bookingUsecase) prepareBooking(db *gorm.DB, practitioner *entity.Practitioner, req *dto.CreateBookingRequest) (*entity.Booking, *entity.AvailabilitySlot, error) {
	if strings.TrimSpace(req.AppointmentType) == "" {
		return nil, nil, missingField("appointment_type")
	}
	if strings.TrimSpace(req.BookingDate) == "" {
		return nil, nil, missingField("booking_date")
	}
	if strings.TrimSpace(req.BookingSlot) == "" {
		return nil, nil, missingField("booking_slot")
	}

	appointmentTypeID, err := uuid.Parse(strings.TrimSpace(req.AppointmentType))
	if err != nil {
		return nil, nil, &ValidationError{Field: "appointment_type", Message: "appointment_type must be a valid UUID"}
	}
	bookingDate, err := entity.ParseDate(strings.TrimSpace(req.BookingDate))
	if err != nil {
		return nil, nil, invalidField("booking_date", err)
	}
	slotID, err := uuid.Parse(strings.TrimSpace(req.BookingSlot))
	if err != nil {
		return nil, nil, &ValidationError{Field: "booking_slot", Message: "booking_slot must be a valid UUID"}
	}

	appointmentType, err := u.appointmentTypeRepo.FindByID(db, appointmentTypeID)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", appointmentTypeID, err)
		return nil, nil, err
	}
	if appointmentType == nil || !appointmentType.IsEnabled {
		return nil, nil, ErrAppointmentTypeNotFound
	}
	if !offersAppointmentType(practitioner, appointmentTypeID) {
		return nil, nil, &ValidationError{Field: "appointment_type", Message: "Practitioner does not offer this appointment type"}
	}

	slot, err := u.slotRepo.FindByID(db, slotID)
	if err != nil {
		u.log.Warnf("Failed to find availability slot %s: %+v", slotID, err)
		return nil, nil, err
	}
	if slot == nil || !slot.IsActive || slot.PractitionerID != practitioner.ID {
		return nil, nil, ErrSlotNotFound
	}

	if bookingDate.DayOfWeek() != slot.DayOfWeek {
		return nil, nil, &ValidationError{
			Field:   "booking_date",
			Message: fmt.Sprintf("Booking date %s is a %s but the slot is on %s", bookingDate, bookingDate.DayOfWeek(), slot.DayOfWeek),
		}
	}

	return &entity.Booking{
		PractitionerID:     practitioner.ID,
		AppointmentTypeID:  appointmentTypeID,
		BookingDate:        bookingDate,
		AvailabilitySlotID: slotID,
		Notes:              strings.TrimSpace(req.Notes),
		IsActive:           true,
	}, slot, nil
}

func (u *bookingUsecase) ListPatientBookings(ctx context.Context, patientID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find bookings of patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// CancelBooking releases the booked slot for its week. Bookings of other
// patients are reported as not found.
func (u *bookingUsecase) CancelBooking(ctx context.Context, patientID, bookingID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil || booking.PatientID != patientID {
		return ErrBookingNotFound
	}
	if booking.IsCancelled() {
		return ErrBookingAlreadyCancelled
	}

	affected, err := u.bookingRepo.CancelBooking(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		return ErrBookingAlreadyCancelled
	}

	before := converter.BookingToResponse(booking)
	booking.Cancel()
	if err := u.auditService.LogUpdate(ctx, tx, service.PatientActor(patientID), entity.AuditActionBookingCancel, "booking", bookingID.String(), before, converter.BookingToResponse(booking)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.occupancy.Invalidate(ctx, booking.PractitionerID, booking.BookingDate)
	metrics.IncBookingCancelled()
	u.log.Infof("Booking cancelled: id=%s, patient=%s", bookingID, patientID)
	return nil
}

func (u *bookingUsecase) ListPracticeBookings(ctx context.Context, ownerID uuid.UUID, date string) (*dto.BookingListResponse, error) {
	var filter *entity.Date
	if date = strings.TrimSpace(date); date != "" {
		d, err := entity.ParseDate(date)
		if err != nil {
			return nil, invalidField("date", err)
		}
		filter = &d
	}

	db := u.db.WithContext(ctx)

	practice, err := u.ownedPractice(db, ownerID)
	if err != nil {
		return nil, err
	}

	bookings, err := u.bookingRepo.FindByPracticeID(db, practice.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings of practice %s: %+v", practice.ID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) activePractitioner(db *gorm.DB, practitionerID uuid.UUID) (*entity.Practitioner, error) {
	practitioner, err := u.practitionerRepo.FindByID(db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil || !practitioner.IsActive {
		return nil, ErrPractitionerNotFound
	}
	return practitioner, nil
}

func (u *bookingUsecase) rejectBooking(err error) {
	switch {
	case errors.Is(err, ErrValidation):
		metrics.IncBookingRejection("validation")
	case errors.Is(err, ErrNotFound):
		metrics.IncBookingRejection("not_found")
	case errors.Is(err, ErrConflict):
		metrics.IncBookingRejection("conflict")
	}
}

// offersAppointmentType reports whether the practitioner accepts the type.
// A practitioner with no configured types accepts any enabled type.
func offersAppointmentType(practitioner *entity.Practitioner, appointmentTypeID uuid.UUID) bool {
	if len(practitioner.AppointmentTypes) == 0 {
		return true
	}
	for _, t := range practitioner.AppointmentTypes {
		if t.ID == appointmentTypeID {
			return true
		}
	}
	return false
}
