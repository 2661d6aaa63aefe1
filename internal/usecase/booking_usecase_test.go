package usecase

import (
	"context"
	"testing"

	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	ownerID           uuid.UUID
	practitionerID    uuid.UUID
	appointmentTypeID uuid.UUID
	slotID            uuid.UUID
}

// newBookingFixture sets up a practice whose practitioner offers one
// appointment type and has a single TUESDAY 09:00-09:30 slot.
func (e *testEnv) newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()

	ownerID, _ := e.newPractice(t)
	appointmentTypeID := e.newAppointmentType(t, ownerID)
	practitionerID := e.newPractitioner(t, ownerID, appointmentTypeID)
	slotID := e.addSlot(t, ownerID, practitionerID, "TUESDAY", "09:00", "09:30")

	return bookingFixture{
		ownerID:           ownerID,
		practitionerID:    practitionerID,
		appointmentTypeID: appointmentTypeID,
		slotID:            slotID,
	}
}

func (f bookingFixture) request(date string) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		AppointmentType: f.appointmentTypeID.String(),
		BookingDate:     date,
		BookingSlot:     f.slotID.String(),
	}
}

func slotAvailability(t *testing.T, resp *dto.DailyAvailabilityResponse, slotID uuid.UUID) dto.SlotAvailabilityResponse {
	t.Helper()
	for _, s := range resp.Slots {
		if s.ID == slotID {
			return s
		}
	}
	t.Fatalf("slot %s not in availability response", slotID)
	return dto.SlotAvailabilityResponse{}
}

func TestBookAppointment_ConsumesSlotForTheWeek(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)
	ctx := context.Background()

	before, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-16")
	require.NoError(t, err)
	assert.True(t, slotAvailability(t, before, f.slotID).IsAvailable)

	confirmation, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, confirmation.BookingID)
	assert.Equal(t, "2024-01-16", confirmation.BookingDate)
	assert.Equal(t, "09:00", confirmation.StartTime)
	assert.Equal(t, "09:30", confirmation.EndTime)
	assert.Equal(t, "Grace Hopper", confirmation.PatientName)
	assert.Equal(t, "Appointment booked successfully with Dr. Ada Lovelace on 2024-01-16 at 09:00", confirmation.Message)

	sameDay, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-16")
	require.NoError(t, err)
	slot := slotAvailability(t, sameDay, f.slotID)
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, "2024-01-16", slot.Date)
	assert.Equal(t, "2024-01-15", sameDay.WeekStart)
	assert.Equal(t, "TUESDAY", sameDay.DayOfWeek)

	nextWeek, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-23")
	require.NoError(t, err)
	assert.True(t, slotAvailability(t, nextWeek, f.slotID).IsAvailable)

	// Any date in the same Monday-start week sees the slot as taken.
	sunday, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-21")
	require.NoError(t, err)
	assert.False(t, slotAvailability(t, sunday, f.slotID).IsAvailable)
}

func TestBookAppointment_SecondBookingInSameWeekIsConflict(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, first := env.newPatient(t)
	_, second := env.newPatient(t)
	ctx := context.Background()

	_, err := env.booking.BookAppointment(ctx, first, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)

	_, err = env.booking.BookAppointment(ctx, second, f.practitionerID, f.request("2024-01-16"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	// The following Tuesday is a new week.
	_, err = env.booking.BookAppointment(ctx, second, f.practitionerID, f.request("2024-01-23"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&entity.Booking{}).Where("is_active = ?", true).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestBookAppointment_ValidationOrder(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)
	ctx := context.Background()

	t.Run("unknown token", func(t *testing.T) {
		_, err := env.booking.BookAppointment(ctx, "not-a-token", f.practitionerID, &dto.CreateBookingRequest{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown practitioner before fields", func(t *testing.T) {
		_, err := env.booking.BookAppointment(ctx, token, uuid.New(), &dto.CreateBookingRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	missing := []struct {
		name  string
		req   dto.CreateBookingRequest
		field string
	}{
		{"all missing", dto.CreateBookingRequest{}, "appointment_type"},
		{"date and slot missing", dto.CreateBookingRequest{AppointmentType: f.appointmentTypeID.String()}, "booking_date"},
		{"slot missing", dto.CreateBookingRequest{AppointmentType: f.appointmentTypeID.String(), BookingDate: "2024-01-16"}, "booking_slot"},
		{"blank type", dto.CreateBookingRequest{AppointmentType: "  ", BookingDate: "2024-01-16", BookingSlot: f.slotID.String()}, "appointment_type"},
	}
	for _, tc := range missing {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, &req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, "Missing required field: "+tc.field, validationErr.Message)
		})
	}

	t.Run("malformed date", func(t *testing.T) {
		req := f.request("16/01/2024")
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, req)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "booking_date", validationErr.Field)
	})

	t.Run("malformed slot id", func(t *testing.T) {
		req := f.request("2024-01-16")
		req.BookingSlot = "slot-1"
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, req)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "booking_slot", validationErr.Field)
	})

	t.Run("unknown appointment type", func(t *testing.T) {
		req := f.request("2024-01-16")
		req.AppointmentType = uuid.NewString()
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, req)
		assert.ErrorIs(t, err, ErrAppointmentTypeNotFound)
	})

	t.Run("type not offered", func(t *testing.T) {
		other := env.newAppointmentType(t, f.ownerID)
		req := f.request("2024-01-16")
		req.AppointmentType = other.String()
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, req)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "appointment_type", validationErr.Field)
	})

	t.Run("unknown slot", func(t *testing.T) {
		req := f.request("2024-01-16")
		req.BookingSlot = uuid.NewString()
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, req)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("date on another weekday", func(t *testing.T) {
		_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-17"))
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "booking_date", validationErr.Field)
		assert.Contains(t, validationErr.Message, "WEDNESDAY")
	})

	var count int64
	require.NoError(t, env.db.Model(&entity.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookAppointment_DisabledAppointmentTypeIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)

	_, err := env.appointmentType.EditAppointmentType(context.Background(), f.ownerID, f.appointmentTypeID, &dto.UpdateAppointmentTypeRequest{
		IsEnabled: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = env.booking.BookAppointment(context.Background(), token, f.practitionerID, f.request("2024-01-16"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookAppointment_SlotOfAnotherPractitionerIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	other := env.newPractitioner(t, f.ownerID)
	_, token := env.newPatient(t)

	_, err := env.booking.BookAppointment(context.Background(), token, other, f.request("2024-01-16"))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookAppointment_DeletedSlotIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)

	require.NoError(t, env.availability.DeleteSlot(context.Background(), f.ownerID, f.slotID))

	_, err := env.booking.BookAppointment(context.Background(), token, f.practitionerID, f.request("2024-01-16"))
	assert.ErrorIs(t, err, ErrSlotNotFound)

	resp, err := env.booking.GetAvailability(context.Background(), f.practitionerID, "2024-01-16")
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestBookAppointment_HeldLockIsConflict(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)

	date := entity.NewDate(2024, 1, 16)
	require.NoError(t, env.mr.Set(service.BookingLockKey(f.practitionerID, f.slotID, date.WeekStart()), "someone-else"))

	_, err := env.booking.BookAppointment(context.Background(), token, f.practitionerID, f.request("2024-01-16"))
	assert.ErrorIs(t, err, ErrBookingBusy)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetAvailability_Validation(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	ctx := context.Background()

	_, err := env.booking.GetAvailability(ctx, f.practitionerID, "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date", validationErr.Field)

	_, err = env.booking.GetAvailability(ctx, f.practitionerID, "2024-13-01")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.booking.GetAvailability(ctx, uuid.New(), "2024-01-16")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_ReleasesSlot(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	patientID, token := env.newPatient(t)
	_, otherToken := env.newPatient(t)
	ctx := context.Background()

	confirmation, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)

	// Warm the week cache so cancellation must invalidate it.
	taken, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-18")
	require.NoError(t, err)
	assert.False(t, slotAvailability(t, taken, f.slotID).IsAvailable)

	require.NoError(t, env.booking.CancelBooking(ctx, patientID, confirmation.BookingID))

	free, err := env.booking.GetAvailability(ctx, f.practitionerID, "2024-01-18")
	require.NoError(t, err)
	assert.True(t, slotAvailability(t, free, f.slotID).IsAvailable)

	err = env.booking.CancelBooking(ctx, patientID, confirmation.BookingID)
	assert.ErrorIs(t, err, ErrBookingAlreadyCancelled)

	// Another patient can now take the slot for that week.
	_, err = env.booking.BookAppointment(ctx, otherToken, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)

	list, err := env.booking.ListPatientBookings(ctx, patientID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.False(t, list.Bookings[0].IsActive)
}

func TestCancelBooking_OtherPatientsBookingIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	_, token := env.newPatient(t)
	otherPatient, _ := env.newPatient(t)
	ctx := context.Background()

	confirmation, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)

	err = env.booking.CancelBooking(ctx, otherPatient, confirmation.BookingID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = env.booking.CancelBooking(ctx, otherPatient, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPatientBookings_OnlyOwnBookings(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	patientID, token := env.newPatient(t)
	otherID, otherToken := env.newPatient(t)
	ctx := context.Background()

	_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)
	_, err = env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-23"))
	require.NoError(t, err)
	_, err = env.booking.BookAppointment(ctx, otherToken, f.practitionerID, f.request("2024-01-30"))
	require.NoError(t, err)

	mine, err := env.booking.ListPatientBookings(ctx, patientID)
	require.NoError(t, err)
	require.Equal(t, 2, mine.Total)
	for _, b := range mine.Bookings {
		assert.Equal(t, patientID, b.PatientID)
		assert.Equal(t, f.practitionerID, b.PractitionerID)
	}

	theirs, err := env.booking.ListPatientBookings(ctx, otherID)
	require.NoError(t, err)
	require.Equal(t, 1, theirs.Total)
	assert.Equal(t, "2024-01-30", theirs.Bookings[0].BookingDate)
}

func TestListPracticeBookings_ScopedToPractice(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	g := env.newBookingFixture(t)
	_, token := env.newPatient(t)
	ctx := context.Background()

	_, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)
	_, err = env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-23"))
	require.NoError(t, err)
	_, err = env.booking.BookAppointment(ctx, token, g.practitionerID, g.request("2024-01-16"))
	require.NoError(t, err)

	all, err := env.booking.ListPracticeBookings(ctx, f.ownerID, "")
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, "2024-01-16", all.Bookings[0].BookingDate)
	assert.Equal(t, "2024-01-23", all.Bookings[1].BookingDate)

	onDate, err := env.booking.ListPracticeBookings(ctx, f.ownerID, "2024-01-23")
	require.NoError(t, err)
	require.Equal(t, 1, onDate.Total)
	assert.Equal(t, f.practitionerID, onDate.Bookings[0].PractitionerID)

	_, err = env.booking.ListPracticeBookings(ctx, f.ownerID, "January 23")
	assert.ErrorIs(t, err, ErrValidation)

	ownerWithoutPractice, _ := env.newOwner(t)
	_, err = env.booking.ListPracticeBookings(ctx, ownerWithoutPractice, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingWritesAreAuditedAsPatient(t *testing.T) {
	env := newTestEnv(t)
	f := env.newBookingFixture(t)
	patientID, token := env.newPatient(t)
	ctx := context.Background()

	confirmation, err := env.booking.BookAppointment(ctx, token, f.practitionerID, f.request("2024-01-16"))
	require.NoError(t, err)
	require.NoError(t, env.booking.CancelBooking(ctx, patientID, confirmation.BookingID))

	var logs []entity.AuditLog
	require.NoError(t, env.db.Where("action LIKE ?", "booking.%").Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditActionBookingCreate, logs[0].Action)
	assert.Equal(t, entity.AuditActionBookingCancel, logs[1].Action)
	for _, l := range logs {
		assert.Equal(t, entity.ActorTypePatient, l.ActorType)
		require.NotNil(t, l.ActorID)
		assert.Equal(t, patientID, *l.ActorID)
	}
}
