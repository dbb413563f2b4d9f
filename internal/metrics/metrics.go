// Package metrics exposes Prometheus collectors for served matches.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomz197/pong/internal/game"
	"github.com/tomz197/pong/internal/loop"
)

// Metrics groups the collectors. Labels are bounded: side is "player" or
// "cpu", reason is one of the fixed rejection reasons.
type Metrics struct {
	registry *prometheus.Registry

	SessionsActive   prometheus.Gauge
	SessionsTotal    prometheus.Counter
	SessionsRejected *prometheus.CounterVec
	Points           *prometheus.CounterVec
	FrameDuration    prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pong_sessions_active",
			Help: "Matches currently being played",
		}),
		SessionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pong_sessions_total",
			Help: "Matches started",
		}),
		SessionsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_sessions_rejected_total",
			Help: "Sessions refused before a match started",
		}, []string{"reason"}),
		Points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pong_points_total",
			Help: "Points scored, by side",
		}, []string{"side"}),
		FrameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pong_frame_duration_seconds",
			Help:    "Time spent updating and drawing a frame",
			Buckets: []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033},
		}),
	}

	m.registry.MustRegister(
		m.SessionsActive,
		m.SessionsTotal,
		m.SessionsRejected,
		m.Points,
		m.FrameDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// Hooks returns loop hooks that feed the point and frame collectors.
func (m *Metrics) Hooks() loop.Hooks {
	return loop.Hooks{
		Point: func(scorer game.Side) {
			m.Points.WithLabelValues(scorer.String()).Inc()
		},
		Frame: func(elapsed time.Duration) {
			m.FrameDuration.Observe(elapsed.Seconds())
		},
	}
}

// SessionStarted records a new match and returns a func to call when it ends.
func (m *Metrics) SessionStarted() (done func()) {
	m.SessionsTotal.Inc()
	m.SessionsActive.Inc()
	return func() { m.SessionsActive.Dec() }
}

// Rejected counts a refused session.
func (m *Metrics) Rejected(reason string) {
	m.SessionsRejected.WithLabelValues(reason).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
