package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"practice-booking-service/config"
	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/repository"
	"practice-booking-service/internal/service"
	"practice-booking-service/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	redis *redis.Client
	log   *logrus.Logger

	auth            AuthUsecase
	practice        PracticeUsecase
	practitioner    PractitionerUsecase
	appointmentType AppointmentTypeUsecase
	availability    AvailabilityUsecase
	booking         BookingUsecase
	auditLog        AuditLogUsecase
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.PracticeUser{},
		&entity.Patient{},
		&entity.Practice{},
		&entity.AppointmentType{},
		&entity.Practitioner{},
		&entity.AvailabilitySlot{},
		&entity.Booking{},
		&entity.AuditLog{},
	))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	patientRepo := repository.NewPatientRepository()
	practiceUserRepo := repository.NewPracticeUserRepository()
	practiceRepo := repository.NewPracticeRepository()
	practitionerRepo := repository.NewPractitionerRepository()
	appointmentTypeRepo := repository.NewAppointmentTypeRepository()
	slotRepo := repository.NewAvailabilitySlotRepository()
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", TokenExpiry: time.Hour})
	sessions := service.NewSessionStore(redisClient)
	locker := service.NewRedisLocker(redisClient, 5*time.Second)
	occupancy := service.NewOccupancyCache(db, redisClient, log, bookingRepo, time.Minute)
	auditService := service.NewAuditService(log, auditLogRepo)

	auth := NewAuthUsecase(db, log, patientRepo, practiceUserRepo, jwtService, sessions)

	return &testEnv{
		db:              db,
		mr:              mr,
		redis:           redisClient,
		log:             log,
		auth:            auth,
		practice:        NewPracticeUsecase(db, log, practiceRepo, practitionerRepo, practiceUserRepo, auditService),
		practitioner:    NewPractitionerUsecase(db, log, practiceRepo, practitionerRepo, appointmentTypeRepo, auditService),
		appointmentType: NewAppointmentTypeUsecase(db, log, appointmentTypeRepo, auditService),
		availability:    NewAvailabilityUsecase(db, log, practiceRepo, practitionerRepo, slotRepo, locker, auditService),
		booking:         NewBookingUsecase(db, log, auth, practiceRepo, practitionerRepo, appointmentTypeRepo, slotRepo, bookingRepo, locker, occupancy, auditService),
		auditLog:        NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

// newOwner registers a practice user and logs them in.
func (e *testEnv) newOwner(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	ctx := context.Background()

	email := fmt.Sprintf("owner-%s@example.com", uuid.NewString()[:8])
	user, err := e.auth.RegisterPracticeUser(ctx, &dto.RegisterPracticeUserRequest{
		Name:     "Practice Owner",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)

	login, err := e.auth.LoginPracticeUser(ctx, &dto.LoginRequest{Email: email, Password: "secret123"})
	require.NoError(t, err)
	return user.ID, login.Token
}

// newPractice registers an owner with a practice already set up.
func (e *testEnv) newPractice(t *testing.T) (ownerID, practiceID uuid.UUID) {
	t.Helper()

	ownerID, _ = e.newOwner(t)
	practice, err := e.practice.SetupPractice(context.Background(), ownerID, &dto.SetupPracticeRequest{
		Name: "Harbour Street Clinic",
	})
	require.NoError(t, err)
	return ownerID, practice.ID
}

func (e *testEnv) newPractitioner(t *testing.T, ownerID uuid.UUID, typeIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	practitioner, err := e.practitioner.CreatePractitioner(context.Background(), ownerID, &dto.CreatePractitionerRequest{
		Name:               "Dr. Ada Lovelace",
		Specialty:          "General Practice",
		AppointmentTypeIDs: typeIDs,
	})
	require.NoError(t, err)
	return practitioner.ID
}

func (e *testEnv) newAppointmentType(t *testing.T, ownerID uuid.UUID) uuid.UUID {
	t.Helper()

	fee := decimal.RequireFromString("60.00")
	appointmentType, err := e.appointmentType.CreateAppointmentType(context.Background(), ownerID, &dto.CreateAppointmentTypeRequest{
		ConsultationType: "In person",
		PatientType:      "New patient",
		DurationMinutes:  30,
		Fee:              &fee,
	})
	require.NoError(t, err)
	return appointmentType.ID
}

func (e *testEnv) addSlot(t *testing.T, ownerID, practitionerID uuid.UUID, day, start, end string) uuid.UUID {
	t.Helper()

	slot, err := e.availability.AddSlot(context.Background(), ownerID, practitionerID, &dto.CreateAvailabilityRequest{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	return slot.ID
}

// newPatient registers and logs in a patient, returning its id and token.
func (e *testEnv) newPatient(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	ctx := context.Background()

	email := fmt.Sprintf("patient-%s@example.com", uuid.NewString()[:8])
	patient, err := e.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:       email,
		Password:    "secret123",
		FirstName:   "Grace",
		LastName:    "Hopper",
		DateOfBirth: "1990-05-17",
	})
	require.NoError(t, err)

	login, err := e.auth.LoginPatient(ctx, &dto.LoginRequest{Email: email, Password: "secret123"})
	require.NoError(t, err)
	return patient.ID, login.Token
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
