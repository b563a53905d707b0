package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Interaction metrics
	InteractionsTotal          *prometheus.CounterVec
	InteractionDurationSeconds *prometheus.HistogramVec
	SignatureRejectionsTotal   prometheus.Counter
	UnknownInteractionsTotal   prometheus.Counter

	// Catalog metrics
	CatalogRequestsTotal   *prometheus.CounterVec
	CatalogDurationSeconds prometheus.Histogram

	// Follow-up metrics
	FollowupTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		InteractionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gifbot_interactions_total",
				Help: "Total number of interactions by type and status",
			},
			[]string{"type", "status"}, // type: ping, command, component; status: success, error
		),

		InteractionDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gifbot_interaction_duration_seconds",
				Help:    "Interaction handling duration in seconds by type",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5}, // Discord enforces a 3s response budget
			},
			[]string{"type"},
		),

		SignatureRejectionsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "gifbot_signature_rejections_total",
				Help: "Total number of requests rejected by the signature gate",
			},
		),

		UnknownInteractionsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "gifbot_unknown_interactions_total",
				Help: "Total number of requests with an unrecognized interaction type",
			},
		),

		CatalogRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gifbot_catalog_requests_total",
				Help: "Total number of catalog fetches by status",
			},
			[]string{"status"}, // status: success, error
		),

		CatalogDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gifbot_catalog_duration_seconds",
				Help:    "Catalog fetch duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
		),

		FollowupTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gifbot_followup_total",
				Help: "Total number of follow-up deliveries by status",
			},
			[]string{"status"}, // status: success, error
		),
	}
}

// RecordInteraction records one handled interaction.
func (m *Metrics) RecordInteraction(interactionType, status string, durationSeconds float64) {
	m.InteractionsTotal.WithLabelValues(interactionType, status).Inc()
	m.InteractionDurationSeconds.WithLabelValues(interactionType).Observe(durationSeconds)
}

// RecordCatalogFetch records one catalog fetch attempt.
func (m *Metrics) RecordCatalogFetch(status string, durationSeconds float64) {
	m.CatalogRequestsTotal.WithLabelValues(status).Inc()
	m.CatalogDurationSeconds.Observe(durationSeconds)
}

// RecordFollowup records one fire-and-forget follow-up outcome.
func (m *Metrics) RecordFollowup(status string) {
	m.FollowupTotal.WithLabelValues(status).Inc()
}
