// Package metrics counts console operations on a private prometheus
// registry. There is no HTTP endpoint; the registry is written to a
// textfile for node-exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/dmitrijs2005/quizdesk/internal/common"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Metrics struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	lastQuizScore prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizdesk_operations_total",
				Help: "Total console operations by outcome.",
			},
			[]string{"op", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quizdesk_operation_duration_seconds",
				Help:    "Time from menu choice to completion of an operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		lastQuizScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "quizdesk_last_quiz_score",
				Help: "Score of the most recent quiz submission.",
			},
		),
	}

	m.registry.MustRegister(m.operations, m.latency, m.lastQuizScore)
	return m
}

// Observe records one finished operation.
func (m *Metrics) Observe(op string, start time.Time, err error) {
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
	m.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) QuizScored(score int) {
	m.lastQuizScore.Set(float64(score))
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteFile writes every metric in text exposition format. The file is
// replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Outcome classifies err for the outcome label. Storage failures are errors,
// anything else non-nil is a rejection.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case common.IsStorage(err):
		return OutcomeError
	default:
		return OutcomeRejected
	}
}
