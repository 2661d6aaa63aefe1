package handler

import (
	"encoding/json"
	"net/http"

	"practice-booking-service/internal/delivery/dto"
	"practice-booking-service/internal/delivery/http/middleware"
	"practice-booking-service/internal/usecase"
	"practice-booking-service/pkg/response"

	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	log            *logrus.Logger
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		log:            log,
	}
}

// GetAvailability evaluates a practitioner's slots against one date
// @Summary Get availability for a date
// @Tags Booking
// @Produce json
// @Param practitioner_id path string true "Practitioner ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/practice/doctors/{practitioner_id}/availability [get]
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := pathUUID(w, r, "practitioner_id", "practitioner ID")
	if !ok {
		return
	}

	availability, err := h.bookingUsecase.GetAvailability(r.Context(), practitionerID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, h.log, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// BookAppointment books a slot for the patient identified by patient_token
// @Summary Book an appointment
// @Tags Booking
// @Accept json
// @Produce json
// @Param practitioner_id path string true "Practitioner ID"
// @Param patient_token query string true "Patient token"
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/practice/doctors/{practitioner_id}/book-appointment [post]
func (h *BookingHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	practitionerID, ok := pathUUID(w, r, "practitioner_id", "practitioner ID")
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	token := middleware.TokenFromRequest(r, middleware.PatientTokenParam)
	booking, err := h.bookingUsecase.BookAppointment(r.Context(), token, practitionerID, &req)
	if err != nil {
		writeError(w, h.log, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, booking.Message, booking)
}

func (h *BookingHandler) ListPatientBookings(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.bookingUsecase.ListPatientBookings(r.Context(), patientID)
	if err != nil {
		writeError(w, h.log, err, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetPatientIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	bookingID, ok := pathUUID(w, r, "booking_id", "booking ID")
	if !ok {
		return
	}

	if err := h.bookingUsecase.CancelBooking(r.Context(), patientID, bookingID); err != nil {
		writeError(w, h.log, err, "Failed to cancel booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

// ListPracticeBookings is the owner's view, optionally filtered by ?date=.
func (h *BookingHandler) ListPracticeBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetPracticeUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.bookingUsecase.ListPracticeBookings(r.Context(), ownerID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, h.log, err, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}
