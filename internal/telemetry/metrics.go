// Package telemetry exposes Prometheus metrics for hosted Flow sessions.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
)

// Metrics holds the collectors for one server.
// Each Metrics owns its registry so tests and servers do not share state.
type Metrics struct {
	registry *prometheus.Registry

	sessions       prometheus.Counter
	activeSessions prometheus.Gauge
	moves          *prometheus.CounterVec
	solved         *prometheus.CounterVec
}

// New creates and registers the Flow collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flow_sessions_total",
			Help: "Total number of SSH sessions started",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flow_active_sessions",
			Help: "Number of SSH sessions currently connected",
		}),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flow_moves_total",
				Help: "Board moves by result",
			},
			[]string{"result"},
		),
		solved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flow_levels_solved_total",
				Help: "Solved puzzles by level",
			},
			[]string{"level"},
		),
	}
	m.registry.MustRegister(m.sessions, m.activeSessions, m.moves, m.solved)
	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SessionStarted records a new connection.
func (m *Metrics) SessionStarted() {
	m.sessions.Inc()
	m.activeSessions.Inc()
}

// SessionEnded records a closed connection.
func (m *Metrics) SessionEnded() {
	m.activeSessions.Dec()
}

// Move records one board move.
func (m *Metrics) Move(result board.MoveResult) {
	m.moves.WithLabelValues(result.String()).Inc()
}

// Solved records a completed level.
func (m *Metrics) Solved(levelID string) {
	m.solved.WithLabelValues(levelID).Inc()
}

// Hooks returns game hooks that feed these metrics.
// A nil Metrics yields empty hooks.
func (m *Metrics) Hooks() flow.Hooks {
	if m == nil {
		return flow.Hooks{}
	}
	return flow.Hooks{
		OnMove: func(_ string, result board.MoveResult) {
			m.Move(result)
		},
		OnSolved: func(levelID string, _ int) {
			m.Solved(levelID)
		},
	}
}
