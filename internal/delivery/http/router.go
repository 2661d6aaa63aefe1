package http

import (
	"net/http"

	"practice-booking-service/internal/delivery/http/handler"
	"practice-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth            *handler.AuthHandler
	Practice        *handler.PracticeHandler
	Practitioner    *handler.PractitionerHandler
	AppointmentType *handler.AppointmentTypeHandler
	Availability    *handler.AvailabilityHandler
	Booking         *handler.BookingHandler
	AuditLog        *handler.AuditLogHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	requestLogger  *middleware.RequestLogger
	loginLimiter   *middleware.RateLimiter
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	requestLogger *middleware.RequestLogger,
	loginLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		requestLogger:  requestLogger,
		loginLimiter:   loginLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// Ops
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Practice auth (public)
	api.HandleFunc("/practice/register", h.Auth.RegisterPracticeUser).Methods(http.MethodPost)
	api.Handle("/practice/login", r.loginLimiter.Handle(http.HandlerFunc(h.Auth.LoginPracticeUser))).Methods(http.MethodPost)

	// Practice routes (protected - user_token)
	practice := api.PathPrefix("/practice").Subrouter()
	practice.Use(r.authMiddleware.RequirePracticeUser)
	practice.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	practice.HandleFunc("/details", h.Practice.GetPracticeDetails).Methods(http.MethodGet)
	practice.HandleFunc("/details", h.Practice.EditPractice).Methods(http.MethodPut)
	practice.HandleFunc("/setup", h.Practice.SetupPractice).Methods(http.MethodPost)

	practice.HandleFunc("/practitioners", h.Practitioner.ListPractitioners).Methods(http.MethodGet)
	practice.HandleFunc("/practitioners", h.Practitioner.CreatePractitioner).Methods(http.MethodPost)
	practice.HandleFunc("/practitioners/{practitioner_uuid}", h.Practitioner.GetPractitioner).Methods(http.MethodGet)
	practice.HandleFunc("/practitioners/{practitioner_uuid}", h.Practitioner.EditPractitioner).Methods(http.MethodPut)
	practice.HandleFunc("/practitioners/{practitioner_uuid}", h.Practitioner.DeletePractitioner).Methods(http.MethodDelete)

	practice.HandleFunc("/practitioners/{practitioner_uuid}/availability", h.Availability.ListSlots).Methods(http.MethodGet)
	practice.HandleFunc("/practitioners/{practitioner_uuid}/availability", h.Availability.AddSlot).Methods(http.MethodPost)
	practice.HandleFunc("/availability/{availability_uuid}", h.Availability.EditSlot).Methods(http.MethodPut)
	practice.HandleFunc("/availability/{availability_uuid}", h.Availability.DeleteSlot).Methods(http.MethodDelete)

	practice.HandleFunc("/appointment-types", h.AppointmentType.ListAppointmentTypes).Methods(http.MethodGet)
	practice.HandleFunc("/create-appointment-type", h.AppointmentType.CreateAppointmentType).Methods(http.MethodPost)
	practice.HandleFunc("/appointment-types/{appointment_type_uuid}", h.AppointmentType.EditAppointmentType).Methods(http.MethodPut)

	practice.HandleFunc("/bookings", h.Booking.ListPracticeBookings).Methods(http.MethodGet)
	practice.HandleFunc("/audit-logs", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)

	// Patient routes (public)
	api.HandleFunc("/patient/register", h.Auth.RegisterPatient).Methods(http.MethodPost)
	api.Handle("/patient/login", r.loginLimiter.Handle(http.HandlerFunc(h.Auth.LoginPatient))).Methods(http.MethodPost)
	api.HandleFunc("/patient/practices", h.Practice.ListPractices).Methods(http.MethodGet)
	api.HandleFunc("/patient/practice/doctors/{practitioner_id}/availability", h.Booking.GetAvailability).Methods(http.MethodGet)
	// The booking usecase resolves patient_token itself.
	api.HandleFunc("/patient/practice/doctors/{practitioner_id}/book-appointment", h.Booking.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/patient/practice/{practice_id}", h.Practice.GetPractice).Methods(http.MethodGet)
	api.HandleFunc("/patient/practice/{practice_id}/doctors", h.Practitioner.ListPracticeDoctors).Methods(http.MethodGet)

	// Patient routes (protected - patient_token)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.RequirePatient)
	patient.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	patient.HandleFunc("/me", h.Auth.GetCurrentPatient).Methods(http.MethodGet)
	patient.HandleFunc("/bookings", h.Booking.ListPatientBookings).Methods(http.MethodGet)
	patient.HandleFunc("/bookings/{booking_id}", h.Booking.CancelBooking).Methods(http.MethodDelete)

	// Add CORS and request logging middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.requestLogger.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
