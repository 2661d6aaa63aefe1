package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "practice_booking"

var (
	once sync.Once

	slotsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_created_total",
			Help:      "Count of availability slots created.",
		},
	)

	slotRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_rejections_total",
			Help:      "Count of rejected availability writes by reason.",
		},
		[]string{"reason"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings created.",
		},
	)

	bookingRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejections_total",
			Help:      "Count of rejected booking attempts by reason.",
		},
		[]string{"reason"},
	)

	bookingsCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Count of bookings cancelled by patients.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route template, method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotsCreated, slotRejections, bookingsCreated, bookingRejections, bookingsCancelled, httpDuration)
	})
}

func IncSlotCreated() {
	slotsCreated.Inc()
}

func IncSlotRejection(reason string) {
	slotRejections.WithLabelValues(reason).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingRejection(reason string) {
	bookingRejections.WithLabelValues(reason).Inc()
}

func IncBookingCancelled() {
	bookingsCancelled.Inc()
}

func ObserveHTTPRequest(route, method, status string, seconds float64) {
	httpDuration.WithLabelValues(route, method, status).Observe(seconds)
}
