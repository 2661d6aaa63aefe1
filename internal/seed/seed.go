// Package seed fills an empty database with a demo practice: one owner
// account, a roster of practitioners with weekly slots, a handful of
// appointment types and some patients.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"practice-booking-service/internal/domain/entity"
	"practice-booking-service/internal/domain/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoOwnerEmail = "owner@demo-practice.test"
	DemoPassword   = "password123"
)

var specialties = []string{
	"General Practice",
	"Dermatology",
	"Cardiology",
	"Pediatrics",
	"Physiotherapy",
	"Psychiatry",
}

type Options struct {
	Practitioners int
	Patients      int
	// Seed makes the generated data reproducible; 0 picks a random seed.
	Seed uint64
}

type Repositories struct {
	PracticeUsers    repository.PracticeUserRepository
	Practices        repository.PracticeRepository
	Practitioners    repository.PractitionerRepository
	AppointmentTypes repository.AppointmentTypeRepository
	Slots            repository.AvailabilitySlotRepository
	Patients         repository.PatientRepository
}

type Seeder struct {
	db    *gorm.DB
	log   *logrus.Logger
	repos Repositories
}

func NewSeeder(db *gorm.DB, log *logrus.Logger, repos Repositories) *Seeder {
	return &Seeder{db: db, log: log, repos: repos}
}

// Summary reports what Run created.
type Summary struct {
	OwnerEmail       string
	PracticeName     string
	Practitioners    int
	Slots            int
	AppointmentTypes int
	Patients         int
}

// Run writes the demo data in one transaction. It refuses to run twice
// against the same database.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	faker := gofakeit.New(opts.Seed)

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := s.repos.PracticeUsers.FindByEmail(tx, DemoOwnerEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("demo data already present (%s exists)", DemoOwnerEmail)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	owner := &entity.PracticeUser{
		Name:       faker.Name(),
		Email:      DemoOwnerEmail,
		Password:   string(hashed),
		IsActive:   true,
		IsVerified: true,
	}
	if err := s.repos.PracticeUsers.Create(tx, owner); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}

	wheelchair := faker.Bool()
	practice := &entity.Practice{
		OwnerID:          owner.ID,
		Name:             faker.Company() + " Medical Centre",
		PhoneNumber:      faker.Phone(),
		Website:          faker.URL(),
		About:            faker.Sentence(12),
		WheelchairAccess: &wheelchair,
		Location: entity.JSON{
			"street": faker.Street(),
			"city":   faker.City(),
			"state":  faker.State(),
			"zip":    faker.Zip(),
		},
	}
	if err := s.repos.Practices.Create(tx, practice); err != nil {
		return nil, fmt.Errorf("create practice: %w", err)
	}

	types, err := s.seedAppointmentTypes(tx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		OwnerEmail:       owner.Email,
		PracticeName:     practice.Name,
		AppointmentTypes: len(types),
	}

	for i := 0; i < opts.Practitioners; i++ {
		practitioner := &entity.Practitioner{
			PracticeID: practice.ID,
			Name:       "Dr. " + faker.Name(),
			Email:      strings.ToLower(faker.Email()),
			Phone:      faker.Phone(),
			Specialty:  specialties[faker.Number(0, len(specialties)-1)],
			City:       faker.City(),
			IsActive:   true,
		}
		if err := s.repos.Practitioners.Create(tx, practitioner); err != nil {
			return nil, fmt.Errorf("create practitioner: %w", err)
		}
		if err := s.repos.Practitioners.ReplaceAppointmentTypes(tx, practitioner, types); err != nil {
			return nil, fmt.Errorf("link appointment types: %w", err)
		}

		slots, err := s.seedSlots(tx, faker, practitioner.ID)
		if err != nil {
			return nil, err
		}
		summary.Practitioners++
		summary.Slots += slots
	}

	for i := 0; i < opts.Patients; i++ {
		dob := entity.DateOf(faker.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
		))
		patient := &entity.Patient{
			Email:       fmt.Sprintf("patient%d.%s", i+1, strings.ToLower(faker.Email())),
			Password:    string(hashed),
			FirstName:   faker.FirstName(),
			LastName:    faker.LastName(),
			DateOfBirth: dob,
			PhoneNumber: faker.Phone(),
			Gender:      faker.Gender(),
			IsActive:    true,
			IsVerified:  true,
		}
		if err := s.repos.Patients.Create(tx, patient); err != nil {
			return nil, fmt.Errorf("create patient: %w", err)
		}
		summary.Patients++
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"owner":         summary.OwnerEmail,
		"practice":      summary.PracticeName,
		"practitioners": summary.Practitioners,
		"slots":         summary.Slots,
		"patients":      summary.Patients,
	}).Info("Demo data seeded")

	return summary, nil
}

func (s *Seeder) seedAppointmentTypes(tx *gorm.DB) ([]entity.AppointmentType, error) {
	types := []entity.AppointmentType{
		{ConsultationType: "In person", PatientType: "New patient", DurationMinutes: 30, Fee: decimal.RequireFromString("85.00"), IsEnabled: true},
		{ConsultationType: "In person", PatientType: "Existing patient", DurationMinutes: 15, Fee: decimal.RequireFromString("55.00"), IsEnabled: true},
		{ConsultationType: "Video", PatientType: "Existing patient", DurationMinutes: 15, Fee: decimal.RequireFromString("45.00"), IsEnabled: true},
	}
	for i := range types {
		if err := s.repos.AppointmentTypes.Create(tx, &types[i]); err != nil {
			return nil, fmt.Errorf("create appointment type: %w", err)
		}
	}
	return types, nil
}

// seedSlots gives the practitioner back-to-back half-hour slots on a random
// set of weekdays. Slots of one day never overlap.
func (s *Seeder) seedSlots(tx *gorm.DB, faker *gofakeit.Faker, practitionerID uuid.UUID) (int, error) {
	count := 0
	for _, day := range entity.DaysOfWeek[:5] {
		if !faker.Bool() {
			continue
		}
		start := entity.ClockTime(faker.Number(8, 10) * 60)
		n := faker.Number(2, 6)
		for i := 0; i < n; i++ {
			slot := &entity.AvailabilitySlot{
				PractitionerID: practitionerID,
				DayOfWeek:      day,
				StartTime:      start,
				EndTime:        start + 30,
				IsActive:       true,
			}
			if err := s.repos.Slots.Create(tx, slot); err != nil {
				return count, fmt.Errorf("create slot: %w", err)
			}
			start += 30
			count++
		}
	}
	return count, nil
}
