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

type PractitionerHandler struct {
	practitionerUsecase usecase.PractitionerUsecase
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewPractitionerHandler(practitionerUsecase usecase.PractitionerUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PractitionerHandler {
	return &PractitionerHandler{
		practitionerUsecase: practitionerUsecase,
		validator:           validator,
		log:                 log,
	}
}

func (h *PractitionerHandler) CreatePractitioner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePractitionerRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practitioner, err := h.practitionerUsecase.CreatePractitioner(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to create practitioner")
		return
	}

	response.Success(w, http.StatusCreated, "Practitioner created successfully", practitioner)
}

func (h *PractitionerHandler) ListPractitioners(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	practitioners, err := h.practitionerUsecase.ListPractitioners(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get practitioners")
		return
	}

	response.Success(w, http.StatusOK, "Practitioners retrieved successfully", practitioners)
}

func (h *PractitionerHandler) GetPractitioner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	practitionerID, ok := pathUUID(w, r, "practitioner_uuid", "practitioner ID")
	if !ok {
		return
	}

	practitioner, err := h.practitionerUsecase.GetPractitioner(r.Context(), ownerID, practitionerID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner retrieved successfully", practitioner)
}

func (h *PractitionerHandler) EditPractitioner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	practitionerID, ok := pathUUID(w, r, "practitioner_uuid", "practitioner ID")
	if !ok {
		return
	}

	var req dto.UpdatePractitionerRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practitioner, err := h.practitionerUsecase.EditPractitioner(r.Context(), ownerID, practitionerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner updated successfully", practitioner)
}

func (h *PractitionerHandler) DeletePractitioner(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	practitionerID, ok := pathUUID(w, r, "practitioner_uuid", "practitioner ID")
	if !ok {
		return
	}

	if err := h.practitionerUsecase.DeletePractitioner(r.Context(), ownerID, practitionerID); err != nil {
		writeError(w, h.log, err, "Failed to delete practitioner")
		return
	}

	response.Success(w, http.StatusOK, "Practitioner deleted successfully", nil)
}

// ListPracticeDoctors is the public roster of a practice.
func (h *PractitionerHandler) ListPracticeDoctors(w http.ResponseWriter, r *http.Request) {
	practiceID, ok := pathUUID(w, r, "practice_id", "practice ID")
	if !ok {
		return
	}

	practitioners, err := h.practitionerUsecase.ListPracticeDoctors(r.Context(), practiceID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get practice doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", practitioners)
}
