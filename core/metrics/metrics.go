// Package metrics provides Prometheus instrumentation for the session layer.
// It exposes counters for session lifecycle events, validation outcomes, and
// backend failures.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SessionsCreated counts sessions minted at login.
	SessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessionguard_sessions_created_total",
		Help: "Total number of sessions created",
	})

	// SessionsDestroyed counts sessions removed at logout.
	SessionsDestroyed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessionguard_sessions_destroyed_total",
		Help: "Total number of sessions destroyed",
	})

	// ValidationsTotal counts per-request validations, labeled by outcome:
	// "authenticated", "anonymous", "invalid", or "error".
	ValidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sessionguard_validations_total",
		Help: "Total number of request validations by outcome",
	}, []string{"outcome"})

	// BackendErrors counts cache backend failures observed by the session layer.
	BackendErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sessionguard_backend_errors_total",
		Help: "Total number of cache backend failures",
	})
)

func init() {
	prometheus.MustRegister(
		SessionsCreated,
		SessionsDestroyed,
		ValidationsTotal,
		BackendErrors,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
