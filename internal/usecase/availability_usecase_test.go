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

func TestAddSlot_RoundTripsThroughList(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	ctx := context.Background()

	created, err := env.availability.AddSlot(ctx, ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "tuesday",
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "TUESDAY", created.DayOfWeek)
	assert.Equal(t, "09:00", created.StartTime)
	assert.Equal(t, "09:30", created.EndTime)
	assert.True(t, created.IsActive)

	list, err := env.availability.ListSlots(ctx, ownerID, practitionerID)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Slots[0].ID)
	assert.Equal(t, "TUESDAY", list.Slots[0].DayOfWeek)
	assert.Equal(t, "09:00", list.Slots[0].StartTime)
	assert.Equal(t, "09:30", list.Slots[0].EndTime)
}

func TestAddSlot_EmptyRangeIsInvalid(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)

	_, err := env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "09:00",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "MONDAY",
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAddSlot_TouchingSlotsAreAllowed(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)

	env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "10:00", "11:00")
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "08:00", "09:00")

	list, err := env.availability.ListSlots(context.Background(), ownerID, practitionerID)
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}

func TestAddSlot_OverlapIsRejected(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")

	cases := []struct {
		name       string
		start, end string
	}{
		{"straddles end", "09:30", "10:30"},
		{"straddles start", "08:30", "09:30"},
		{"contained", "09:15", "09:45"},
		{"contains", "08:00", "11:00"},
		{"identical", "09:00", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
				DayOfWeek: "MONDAY",
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOverlap)
		})
	}

	// Same times on another day are independent.
	env.addSlot(t, ownerID, practitionerID, "TUESDAY", "09:30", "10:30")
}

func TestAddSlot_NoOverlapInvariantHolds(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	ctx := context.Background()

	attempts := [][2]string{
		{"09:00", "10:00"}, {"09:30", "10:30"}, {"10:00", "10:45"}, {"10:30", "11:00"},
		{"10:45", "11:15"}, {"07:00", "12:00"}, {"12:00", "12:30"}, {"11:59", "12:01"},
	}
	for _, a := range attempts {
		_, _ = env.availability.AddSlot(ctx, ownerID, practitionerID, &dto.CreateAvailabilityRequest{
			DayOfWeek: "WEDNESDAY",
			StartTime: a[0],
			EndTime:   a[1],
		})
	}

	list, err := env.availability.ListSlots(ctx, ownerID, practitionerID)
	require.NoError(t, err)
	require.NotEmpty(t, list.Slots)

	for i := range list.Slots {
		for j := i + 1; j < len(list.Slots); j++ {
			a, b := list.Slots[i], list.Slots[j]
			if a.DayOfWeek != b.DayOfWeek {
				continue
			}
			assert.False(t, a.StartTime < b.EndTime && a.EndTime > b.StartTime,
				"slots %s-%s and %s-%s overlap", a.StartTime, a.EndTime, b.StartTime, b.EndTime)
		}
	}
}

func TestAddSlot_ValidatesFields(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)

	_, err := env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "FUNDAY",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "day_of_week", validationErr.Field)

	_, err = env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "MONDAY",
		StartTime: "25:00",
		EndTime:   "10:00",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "start_time", validationErr.Field)
}

func TestAddSlot_OtherPracticesPractitionerIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	otherOwner, _ := env.newPractice(t)

	_, err := env.availability.AddSlot(context.Background(), otherOwner, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.availability.ListSlots(context.Background(), otherOwner, practitionerID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddSlot_OwnerWithoutPracticeIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newOwner(t)

	_, err := env.availability.ListSlots(context.Background(), ownerID, uuid.New())
	assert.ErrorIs(t, err, ErrPracticeNotSetUp)
}

func TestAddSlot_HeldLockIsConflict(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)

	require.NoError(t, env.mr.Set(service.AvailabilityLockKey(practitionerID, entity.Friday), "someone-else"))

	_, err := env.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: "FRIDAY",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// Other days are not blocked.
	env.addSlot(t, ownerID, practitionerID, "THURSDAY", "09:00", "10:00")
}

func TestEditSlot_EndTimeOnly(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	slotID := env.addSlot(t, ownerID, practitionerID, "TUESDAY", "09:00", "09:30")

	updated, err := env.availability.EditSlot(context.Background(), ownerID, slotID, &dto.UpdateAvailabilityRequest{
		EndTime: strPtr("10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, slotID, updated.ID)
	assert.Equal(t, "TUESDAY", updated.DayOfWeek)
	assert.Equal(t, "09:00", updated.StartTime)
	assert.Equal(t, "10:00", updated.EndTime)
	assert.True(t, updated.IsActive)

	list, err := env.availability.ListSlots(context.Background(), ownerID, practitionerID)
	require.NoError(t, err)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, "10:00", list.Slots[0].EndTime)
}

func TestEditSlot_RevalidatesAgainstOtherSlots(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	ctx := context.Background()

	env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")
	second := env.addSlot(t, ownerID, practitionerID, "MONDAY", "10:00", "11:00")
	friday := env.addSlot(t, ownerID, practitionerID, "FRIDAY", "09:30", "10:30")

	_, err := env.availability.EditSlot(ctx, ownerID, second, &dto.UpdateAvailabilityRequest{StartTime: strPtr("09:30")})
	assert.ErrorIs(t, err, ErrOverlap)

	_, err = env.availability.EditSlot(ctx, ownerID, second, &dto.UpdateAvailabilityRequest{EndTime: strPtr("10:00")})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Moving to a day where it collides is rejected too.
	_, err = env.availability.EditSlot(ctx, ownerID, friday, &dto.UpdateAvailabilityRequest{DayOfWeek: strPtr("monday")})
	assert.ErrorIs(t, err, ErrOverlap)

	// A slot never collides with itself.
	updated, err := env.availability.EditSlot(ctx, ownerID, second, &dto.UpdateAvailabilityRequest{EndTime: strPtr("11:30")})
	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.EndTime)
}

func TestEditSlot_OtherPracticeIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	slotID := env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")
	otherOwner, _ := env.newPractice(t)

	_, err := env.availability.EditSlot(context.Background(), otherOwner, slotID, &dto.UpdateAvailabilityRequest{EndTime: strPtr("10:30")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = env.availability.DeleteSlot(context.Background(), otherOwner, slotID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.availability.EditSlot(context.Background(), ownerID, uuid.New(), &dto.UpdateAvailabilityRequest{})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeleteSlot_HidesSlotFromList(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	ctx := context.Background()

	keep := env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")
	drop := env.addSlot(t, ownerID, practitionerID, "MONDAY", "10:00", "11:00")

	require.NoError(t, env.availability.DeleteSlot(ctx, ownerID, drop))

	list, err := env.availability.ListSlots(ctx, ownerID, practitionerID)
	require.NoError(t, err)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, keep, list.Slots[0].ID)

	// The row is retained, only deactivated.
	var slot entity.AvailabilitySlot
	require.NoError(t, env.db.First(&slot, "id = ?", drop).Error)
	assert.False(t, slot.IsActive)

	// Its time range is free again.
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "10:00", "11:00")

	err = env.availability.DeleteSlot(ctx, ownerID, drop)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestListSlots_OrderedByWeekdayThenStart(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)

	env.addSlot(t, ownerID, practitionerID, "SUNDAY", "08:00", "09:00")
	env.addSlot(t, ownerID, practitionerID, "WEDNESDAY", "14:00", "15:00")
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "11:00", "12:00")
	env.addSlot(t, ownerID, practitionerID, "WEDNESDAY", "09:00", "10:00")
	env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")

	list, err := env.availability.ListSlots(context.Background(), ownerID, practitionerID)
	require.NoError(t, err)

	var got []string
	for _, s := range list.Slots {
		got = append(got, s.DayOfWeek+" "+s.StartTime)
	}
	assert.Equal(t, []string{
		"MONDAY 09:00",
		"MONDAY 11:00",
		"WEDNESDAY 09:00",
		"WEDNESDAY 14:00",
		"SUNDAY 08:00",
	}, got)
}

func TestSlotWritesAreAudited(t *testing.T) {
	env := newTestEnv(t)
	ownerID, _ := env.newPractice(t)
	practitionerID := env.newPractitioner(t, ownerID)
	ctx := context.Background()

	slotID := env.addSlot(t, ownerID, practitionerID, "MONDAY", "09:00", "10:00")
	_, err := env.availability.EditSlot(ctx, ownerID, slotID, &dto.UpdateAvailabilityRequest{EndTime: strPtr("10:30")})
	require.NoError(t, err)
	require.NoError(t, env.availability.DeleteSlot(ctx, ownerID, slotID))

	var actions []string
	require.NoError(t, env.db.Model(&entity.AuditLog{}).
		Where("action LIKE ?", "availability.%").
		Order("id").
		Pluck("action", &actions).Error)
	assert.Equal(t, []string{
		entity.AuditActionSlotCreate,
		entity.AuditActionSlotUpdate,
		entity.AuditActionSlotDelete,
	}, actions)
}
