package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	ErrorTotal      *prometheus.CounterVec

	// Order progress simulator metrics
	PrescriptionAdvances *prometheus.CounterVec
	OrdersInFulfillment  prometheus.Gauge
	SimulatorTicks       prometheus.Counter

	// AI gateway metrics
	AIRequests *prometheus.CounterVec
	AILatency  *prometheus.HistogramVec
	AICacheHit *prometheus.CounterVec

	// Event publishing metrics
	EventsPublished *prometheus.CounterVec

	ActiveSessions prometheus.Gauge
}

// NewMetrics creates all application metrics and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
		}, []string{"method", "path", "status"}),
		RequestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		ErrorTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of HTTP errors",
		}, []string{"method", "path", "type"}),

		PrescriptionAdvances: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulator",
			Name:      "prescription_advances_total",
			Help:      "Prescription fulfillment transitions applied by the simulator",
		}, []string{"to_status"}),
		OrdersInFulfillment: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "simulator",
			Name:      "orders_in_fulfillment",
			Help:      "Prescriptions currently between order_placed and completed",
		}),
		SimulatorTicks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulator",
			Name:      "ticks_total",
			Help:      "Simulator ticks processed",
		}),

		AIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "requests_total",
			Help:      "Generative AI requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		AILatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "request_duration_seconds",
			Help:      "Duration of generative AI requests",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20},
		}, []string{"operation"}),
		AICacheHit: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "cache_hits_total",
			Help:      "Place searches answered from cache",
		}, []string{"operation"}),

		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events handed to the broker",
		}, []string{"event_type", "status"}),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Portal sessions currently held in memory",
		}),
	}
}

// NewNop builds metrics against a private registry, for tests and tools
// that never expose them.
func NewNop() *Metrics {
	return NewMetrics("medlink", prometheus.NewRegistry())
}
