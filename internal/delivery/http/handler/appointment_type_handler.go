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

type AppointmentTypeHandler struct {
	appointmentTypeUsecase usecase.AppointmentTypeUsecase
	validator              *validator.CustomValidator
	log                    *logrus.Logger
}

func NewAppointmentTypeHandler(appointmentTypeUsecase usecase.AppointmentTypeUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{
		appointmentTypeUsecase: appointmentTypeUsecase,
		validator:              validator,
		log:                    log,
	}
}

func (h *AppointmentTypeHandler) CreateAppointmentType(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointmentType, err := h.appointmentTypeUsecase.CreateAppointmentType(r.Context(), actorID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to create appointment type")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment type created successfully", appointmentType)
}

func (h *AppointmentTypeHandler) ListAppointmentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.appointmentTypeUsecase.ListAppointmentTypes(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get appointment types")
		return
	}

	response.Success(w, http.StatusOK, "Appointment types retrieved successfully", types)
}

func (h *AppointmentTypeHandler) EditAppointmentType(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	appointmentTypeID, ok := pathUUID(w, r, "appointment_type_uuid", "appointment type ID")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	appointmentType, err := h.appointmentTypeUsecase.EditAppointmentType(r.Context(), actorID, appointmentTypeID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update appointment type")
		return
	}

	response.Success(w, http.StatusOK, "Appointment type updated successfully", appointmentType)
}
