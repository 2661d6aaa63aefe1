package seed

import (
	"context"
	"fmt"
	"io"
	"testing"

	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeeder(t *testing.T) (*Seeder, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.PracticeUser{},
		&entity.Practice{},
		&entity.AppointmentType{},
		&entity.Practitioner{},
		&entity.AvailabilitySlot{},
		&entity.Patient{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewSeeder(db, log, Repositories{
		PracticeUsers:    repository.NewPracticeUserRepository(),
		Practices:        repository.NewPracticeRepository(),
		Practitioners:    repository.NewPractitionerRepository(),
		AppointmentTypes: repository.NewAppointmentTypeRepository(),
		Slots:            repository.NewAvailabilitySlotRepository(),
		Patients:         repository.NewPatientRepository(),
	}), db
}

func TestSeeder_Run(t *testing.T) {
	seeder, db := newSeeder(t)

	summary, err := seeder.Run(context.Background(), Options{Practitioners: 3, Patients: 4, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, DemoOwnerEmail, summary.OwnerEmail)
	assert.Equal(t, 3, summary.Practitioners)
	assert.Equal(t, 4, summary.Patients)
	assert.Equal(t, 3, summary.AppointmentTypes)

	var practitioners, patients, slots int64
	require.NoError(t, db.Model(&entity.Practitioner{}).Count(&practitioners).Error)
	require.NoError(t, db.Model(&entity.Patient{}).Count(&patients).Error)
	require.NoError(t, db.Model(&entity.AvailabilitySlot{}).Count(&slots).Error)
	assert.Equal(t, int64(3), practitioners)
	assert.Equal(t, int64(4), patients)
	assert.Equal(t, int64(summary.Slots), slots)

	var all []entity.AvailabilitySlot
	require.NoError(t, db.Find(&all).Error)
	for i := range all {
		assert.True(t, all[i].ValidRange())
		for j := i + 1; j < len(all); j++ {
			if all[i].PractitionerID == all[j].PractitionerID {
				assert.False(t, all[i].Overlaps(&all[j]), "seeded slots overlap")
			}
		}
	}
}

func TestSeeder_RefusesSecondRun(t *testing.T) {
	seeder, db := newSeeder(t)

	_, err := seeder.Run(context.Background(), Options{Practitioners: 1, Patients: 1, Seed: 7})
	require.NoError(t, err)

	_, err = seeder.Run(context.Background(), Options{Practitioners: 1, Patients: 1, Seed: 7})
	assert.ErrorContains(t, err, "already present")

	var practices int64
	require.NoError(t, db.Model(&entity.Practice{}).Count(&practices).Error)
	assert.Equal(t, int64(1), practices)
}
