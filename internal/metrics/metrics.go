// Package metrics defines the prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Database metrics, fed by the pgx query tracer.
var (
	// DBQueryDuration tracks database query latency in seconds by query type
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by query type
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by query type",
		},
		[]string{"query"},
	)
)

// Account lifecycle metrics.
var (
	// RegistrationsTotal counts successfully created accounts
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "account_registrations_total",
			Help: "Total successful account registrations",
		},
	)

	// LoginAttemptsTotal counts authentication attempts by outcome (success/failure)
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total login attempts by outcome",
		},
		[]string{"status"},
	)

	// LoginsThrottledTotal counts logins rejected by the rate limiter
	LoginsThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_throttled_total",
			Help: "Total login attempts rejected by the rate limiter",
		},
	)

	// TokensRevokedTotal counts tokens added to the revocation list
	TokensRevokedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tokens_revoked_total",
			Help: "Total session tokens revoked via logout",
		},
	)
)
