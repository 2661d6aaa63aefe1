package usecase

import (
	"context"
	"testing"

	"practice-booking-service/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient_NormalisesEmailAndRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	patient, err := env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:       "  Grace@Example.COM ",
		Password:    "secret123",
		FirstName:   " Grace ",
		LastName:    "Hopper",
		DateOfBirth: "1906-12-09",
	})
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", patient.Email)
	assert.Equal(t, "Grace", patient.FirstName)
	assert.Equal(t, "1906-12-09", patient.DateOfBirth)

	_, err = env.auth.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Email:       "grace@example.com",
		Password:    "another1",
		FirstName:   "Other",
		DateOfBirth: "1990-01-01",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterPatient_InvalidDateOfBirth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Email:       "a@example.com",
		Password:    "secret123",
		FirstName:   "A",
		DateOfBirth: "09/12/1906",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "date_of_birth", validationErr.Field)
}

func TestLoginPatient(t *testing.T) {
	env := newTestEnv(t)
	patientID, _ := env.newPatient(t)
	ctx := context.Background()

	current, err := env.auth.GetCurrentPatient(ctx, patientID)
	require.NoError(t, err)

	login, err := env.auth.LoginPatient(ctx, &dto.LoginRequest{Email: current.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, patientID, login.PatientID)
	assert.Equal(t, int64(3600), login.ExpiresIn)

	_, err = env.auth.LoginPatient(ctx, &dto.LoginRequest{Email: current.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.auth.LoginPatient(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolvePatient_TokenLifecycle(t *testing.T) {
	env := newTestEnv(t)
	patientID, token := env.newPatient(t)
	ctx := context.Background()

	patient, err := env.auth.ResolvePatient(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, patientID, patient.ID)

	require.NoError(t, env.auth.Logout(ctx, token))

	_, err = env.auth.ResolvePatient(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolve_RejectsWrongKindAndGarbage(t *testing.T) {
	env := newTestEnv(t)
	_, patientToken := env.newPatient(t)
	_, ownerToken := env.newOwner(t)
	ctx := context.Background()

	_, err := env.auth.ResolvePracticeUser(ctx, patientToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.auth.ResolvePatient(ctx, ownerToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.auth.ResolvePatient(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.auth.ResolvePracticeUser(ctx, "garbage.token.value")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = env.auth.Logout(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolvePracticeUser_SessionMustExist(t *testing.T) {
	env := newTestEnv(t)
	ownerID, token := env.newOwner(t)
	ctx := context.Background()

	user, err := env.auth.ResolvePracticeUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, user.ID)

	// A signed token whose session was dropped from Redis is not accepted.
	env.mr.FlushAll()
	_, err = env.auth.ResolvePracticeUser(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterPracticeUser_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &dto.RegisterPracticeUserRequest{Name: "Owner", Email: "owner@example.com", Password: "secret123"}
	_, err := env.auth.RegisterPracticeUser(ctx, req)
	require.NoError(t, err)

	_, err = env.auth.RegisterPracticeUser(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestGetCurrentPatient_Unknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.GetCurrentPatient(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
