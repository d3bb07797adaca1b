// Package metrics defines the Prometheus instrumentation for the dialog
// service. All metrics are registered on a private registry so tests can
// create isolated instances.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Dialog metrics
	TurnsTotal          *prometheus.CounterVec
	TurnDurationSeconds *prometheus.HistogramVec
	SessionsActive      prometheus.Gauge
	SessionsSweptTotal  prometheus.Counter

	// Classification metrics
	SafetyTriggersTotal *prometheus.CounterVec
	DomainMatchesTotal  *prometheus.CounterVec

	// Retrieval metrics
	RetrievalsTotal        prometheus.Counter
	RetrievalLowConfidence prometheus.Counter
	RetrievalResultCount   prometheus.Histogram

	// Escalation metrics
	EscalationsTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPErrorsTotal     *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Dialog metrics
		TurnsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "carebot_turns_total",
				Help: "Total number of dialog turns by input type and resulting step",
			},
			[]string{"type", "step"}, // type: text, action
		),

		TurnDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "carebot_turn_duration_seconds",
				Help:    "Dialog turn processing duration in seconds by input type",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}, // Engine turns are CPU bound
			},
			[]string{"type"},
		),

		SessionsActive: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "carebot_sessions_active",
				Help: "Number of sessions currently held in memory",
			},
		),

		SessionsSweptTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "carebot_sessions_swept_total",
				Help: "Total number of idle sessions removed by the sweeper",
			},
		),

		// Classification metrics
		SafetyTriggersTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "carebot_safety_triggers_total",
				Help: "Total number of safety classifier triggers by kind",
			},
			[]string{"kind"}, // kind: sensitive, urgent
		),

		DomainMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "carebot_domain_matches_total",
				Help: "Total number of domain classifier matches by domain and method",
			},
			[]string{"domain", "method"}, // method: hard, soft, none
		),

		// Retrieval metrics
		RetrievalsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "carebot_retrievals_total",
				Help: "Total number of knowledge-base retrievals",
			},
		),

		RetrievalLowConfidence: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "carebot_retrieval_low_confidence_total",
				Help: "Total number of retrievals that fell below the confidence threshold",
			},
		),

		RetrievalResultCount: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carebot_retrieval_result_count",
				Help:    "Number of schemes returned per retrieval",
				Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
			},
		),

		// Escalation metrics
		EscalationsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "carebot_escalations_total",
				Help: "Total number of human-handoff recommendations by reason",
			},
			[]string{"reason"}, // reason: sensitive, urgent, low_confidence, user_requested
		),

		// HTTP metrics
		HTTPRequestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "carebot_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by route and status",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"route", "status"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "carebot_http_errors_total",
				Help: "Total HTTP errors by type and route",
			},
			[]string{"error_type", "route"}, // error_type: bad_request, not_found, rate_limited, internal
		),
	}

	return m
}

// RecordTurn records a processed dialog turn
func (m *Metrics) RecordTurn(inputType, step string, duration float64) {
	m.TurnsTotal.WithLabelValues(inputType, step).Inc()
	m.TurnDurationSeconds.WithLabelValues(inputType).Observe(duration)
}

// RecordSafetyTrigger records a safety classifier trigger
func (m *Metrics) RecordSafetyTrigger(kind string) {
	m.SafetyTriggersTotal.WithLabelValues(kind).Inc()
}

// RecordDomainMatch records a domain classification outcome
func (m *Metrics) RecordDomainMatch(domain, method string) {
	m.DomainMatchesTotal.WithLabelValues(domain, method).Inc()
}

// RecordRetrieval records a retrieval and its outcome
func (m *Metrics) RecordRetrieval(resultCount int, lowConfidence bool) {
	m.RetrievalsTotal.Inc()
	m.RetrievalResultCount.Observe(float64(resultCount))
	if lowConfidence {
		m.RetrievalLowConfidence.Inc()
	}
}

// RecordEscalation records a human-handoff recommendation
func (m *Metrics) RecordEscalation(reason string) {
	m.EscalationsTotal.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records an HTTP request duration
func (m *Metrics) RecordHTTPRequest(route, status string, duration float64) {
	m.HTTPRequestDuration.WithLabelValues(route, status).Observe(duration)
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, route string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, route).Inc()
}

// SetActiveSessions updates the active session gauge
func (m *Metrics) SetActiveSessions(n int) {
	m.SessionsActive.Set(float64(n))
}

// RecordSessionsSwept records idle sessions removed by the sweeper
func (m *Metrics) RecordSessionsSwept(n int) {
	m.SessionsSweptTotal.Add(float64(n))
}
