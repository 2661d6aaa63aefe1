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

type PracticeHandler struct {
	practiceUsecase usecase.PracticeUsecase
	validator       *validator.CustomValidator
	log             *logrus.Logger
}

func NewPracticeHandler(practiceUsecase usecase.PracticeUsecase, validator *validator.CustomValidator, log *logrus.Logger) *PracticeHandler {
	return &PracticeHandler{
		practiceUsecase: practiceUsecase,
		validator:       validator,
		log:             log,
	}
}

func (h *PracticeHandler) SetupPractice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetupPracticeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practice, err := h.practiceUsecase.SetupPractice(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to set up practice")
		return
	}

	response.Success(w, http.StatusCreated, "Practice set up successfully", practice)
}

func (h *PracticeHandler) GetPracticeDetails(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	details, err := h.practiceUsecase.GetPracticeDetails(r.Context(), ownerID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get practice details")
		return
	}

	response.Success(w, http.StatusOK, "Practice details retrieved successfully", details)
}

func (h *PracticeHandler) EditPractice(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdatePracticeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	practice, err := h.practiceUsecase.EditPractice(r.Context(), ownerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update practice")
		return
	}

	response.Success(w, http.StatusOK, "Practice updated successfully", practice)
}

func (h *PracticeHandler) ListPractices(w http.ResponseWriter, r *http.Request) {
	practices, err := h.practiceUsecase.ListPractices(r.Context())
	if err != nil {
		writeError(w, h.log, err, "Failed to get practices")
		return
	}

	response.Success(w, http.StatusOK, "Practices retrieved successfully", practices)
}

func (h *PracticeHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	practiceID, ok := pathUUID(w, r, "practice_id", "practice ID")
	if !ok {
		return
	}

	practice, err := h.practiceUsecase.GetPractice(r.Context(), practiceID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get practice")
		return
	}

	response.Success(w, http.StatusOK, "Practice retrieved successfully", practice)
}
