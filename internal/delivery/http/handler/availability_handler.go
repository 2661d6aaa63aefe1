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

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator, log *logrus.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
		log:                 log,
	}
}

// ListSlots returns the weekly template of a practitioner
// @Summary List availability slots
// @Tags Availability
// @Produce json
// @Param practitioner_uuid path string true "Practitioner ID"
// @Param user_token query string true "Practice token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /practice/practitioners/{practitioner_uuid}/availability [get]
func (h *AvailabilityHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	practitionerID, ok := pathUUID(w, r, "practitioner_uuid", "practitioner ID")
	if !ok {
		return
	}

	slots, err := h.availabilityUsecase.ListSlots(r.Context(), ownerID, practitionerID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slots)
}

// AddSlot adds a weekly slot
// @Summary Add availability slot
// @Tags Availability
// @Accept json
// @Produce json
// @Param practitioner_uuid path string true "Practitioner ID"
// @Param request body dto.CreateAvailabilityRequest true "Slot"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /practice/practitioners/{practitioner_uuid}/availability [post]
func (h *AvailabilityHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	practitionerID, ok := pathUUID(w, r, "practitioner_uuid", "practitioner ID")
	if !ok {
		return
	}

	var req dto.CreateAvailabilityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	slot, err := h.availabilityUsecase.AddSlot(r.Context(), ownerID, practitionerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to create availability")
		return
	}

	response.Success(w, http.StatusCreated, "Availability created successfully", slot)
}

func (h *AvailabilityHandler) EditSlot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	slotID, ok := pathUUID(w, r, "availability_uuid", "availability ID")
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	slot, err := h.availabilityUsecase.EditSlot(r.Context(), ownerID, slotID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to update availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", slot)
}

func (h *AvailabilityHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	slotID, ok := pathUUID(w, r, "availability_uuid", "availability ID")
	if !ok {
		return
	}

	if err := h.availabilityUsecase.DeleteSlot(r.Context(), ownerID, slotID); err != nil {
		writeError(w, h.log, err, "Failed to delete availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability deleted successfully", nil)
}
