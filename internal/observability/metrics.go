// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"crosschain-token-lab/internal/event"
	"crosschain-token-lab/internal/token"
)

// Metrics holds all Prometheus metrics for the token core.
type Metrics struct {
	// Operation metrics
	OperationsTotal   *prometheus.CounterVec // labels: op, outcome
	OperationFailures *prometheus.CounterVec // labels: op, reason

	// Event metrics
	EventsEmitted *prometheus.CounterVec // labels: type
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "crosschain_token_lab"
	}

	return &Metrics{
		OperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "token",
			Name:      "operations_total",
			Help:      "Total number of token operations by outcome",
		}, []string{"op", "outcome"}),
		OperationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "token",
			Name:      "operation_failures_total",
			Help:      "Total number of failed token operations by reason",
		}, []string{"op", "reason"}),
		EventsEmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "token",
			Name:      "events_emitted_total",
			Help:      "Total number of events emitted by type",
		}, []string{"type"}),
	}
}

// ObserveOperation records the outcome of a token operation.
func (m *Metrics) ObserveOperation(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		m.OperationFailures.WithLabelValues(op, token.ErrorReason(err)).Inc()
	}
	m.OperationsTotal.WithLabelValues(op, outcome).Inc()
}

// InstrumentSink wraps a sink so every emitted event is counted by type.
// A nil next sink counts and discards.
func (m *Metrics) InstrumentSink(next event.Sink) event.Sink {
	return &instrumentedSink{next: next, events: m.EventsEmitted}
}

type instrumentedSink struct {
	next   event.Sink
	events *prometheus.CounterVec
}

func (s *instrumentedSink) Emit(e event.Event) {
	s.events.WithLabelValues(string(e.Type)).Inc()
	if s.next != nil {
		s.next.Emit(e)
	}
}
