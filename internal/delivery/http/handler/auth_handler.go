package handler

import (
	"net/http"

	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/delivery/http/middleware"
	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/response"
	"practice-booking-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	log         *logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		log:         log,
	}
}

// RegisterPatient handles patient sign-up
// @Summary Register a patient
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/register [post]
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	patient, err := h.authUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to register patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

// LoginPatient handles patient login
// @Summary Login patient
// @Tags Patient
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /patient/login [post]
func (h *AuthHandler) LoginPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	login, err := h.authUsecase.LoginPatient(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", login)
}

// RegisterPracticeUser handles practice account sign-up
// @Summary Register a practice user
// @Tags Practice
// @Accept json
// @Produce json
// @Param request body dto.RegisterPracticeUserRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /practice/register [post]
func (h *AuthHandler) RegisterPracticeUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPracticeUserRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.authUsecase.RegisterPracticeUser(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to register practice user")
		return
	}

	response.Success(w, http.StatusCreated, "Practice user registered successfully", user)
}

// LoginPracticeUser handles practice login
// @Summary Login practice user
// @Tags Practice
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /practice/login [post]
func (h *AuthHandler) LoginPracticeUser(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	login, err := h.authUsecase.LoginPracticeUser(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", login)
}

// Logout revokes the token the request was authenticated with. Shared by
// both the practice and patient routes.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetTokenFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), token); err != nil {
		writeError(w, h.log, err, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentPatient returns the profile of the authenticated patient
// @Summary Get current patient
// @Tags Patient
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /patient/me [get]
func (h *AuthHandler) GetCurrentPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patient, err := h.authUsecase.GetCurrentPatient(r.Context(), patientID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get patient info")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
