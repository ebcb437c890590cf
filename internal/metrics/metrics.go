package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "superdaily",
			Name:      "booking_create_total",
			Help:      "Booking create requests by outcome.",
		},
		[]string{"outcome"},
	)

	productListed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "superdaily",
			Name:      "product_list_total",
			Help:      "Featured product listings by source.",
		},
		[]string{"source"},
	)

	loginAttempt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "superdaily",
			Name:      "login_attempt_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, productListed, loginAttempt)
	})
}

// IncBookingCreate counts a booking create attempt; outcome is "created",
// "rejected" or "failed".
func IncBookingCreate(outcome string) {
	bookingCreated.WithLabelValues(outcome).Inc()
}

// IncProductList counts a listing served from "db", "cache" or that "failed".
func IncProductList(source string) {
	productListed.WithLabelValues(source).Inc()
}

// IncLogin counts a login attempt by outcome.
func IncLogin(outcome string) {
	loginAttempt.WithLabelValues(outcome).Inc()
}
