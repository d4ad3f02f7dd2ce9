package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	IncidentsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tikkeul",
		Subsystem: "api",
		Name:      "incidents_created_total",
		Help:      "Total number of incidents stored.",
	})

	WorkersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tikkeul",
		Subsystem: "api",
		Name:      "workers_created_total",
		Help:      "Total number of worker records stored.",
	})

	// AuthAttemptsTotal counts logins and signups by outcome.
	AuthAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tikkeul",
		Subsystem: "auth",
		Name:      "attempts_total",
		Help:      "Authentication attempts, labeled by kind and result.",
	}, []string{"kind", "result"})

	OrphanWorkersSweptTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tikkeul",
		Subsystem: "sweeper",
		Name:      "orphan_workers_deleted_total",
		Help:      "Worker records deleted because no incident ever referenced them.",
	})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tikkeul",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests, labeled by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tikkeul",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route"})
)

// Register registers all metrics with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			IncidentsCreatedTotal,
			WorkersCreatedTotal,
			AuthAttemptsTotal,
			OrphanWorkersSweptTotal,
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
		)
	})
}
