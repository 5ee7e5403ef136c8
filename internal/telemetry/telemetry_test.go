package telemetry_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/telemetry"
)

// gather returns metric values keyed by name and labels, e.g.
// `flow_moves_total{result="extended"}`.
func gather(t *testing.T, m *telemetry.Metrics) map[string]float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			key := f.GetName()
			for _, l := range metric.GetLabel() {
				key += fmt.Sprintf("{%s=%q}", l.GetName(), l.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				values[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[key] = metric.GetGauge().GetValue()
			}
		}
	}
	return values
}

func TestSessionGauge(t *testing.T) {
	m := telemetry.New()
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	values := gather(t, m)
	assert.InDelta(t, 2, values["flow_sessions_total"], 0)
	assert.InDelta(t, 1, values["flow_active_sessions"], 0)
}

func TestHooksFeedCounters(t *testing.T) {
	m := telemetry.New()
	h := m.Hooks()

	h.OnMove("03-classic", board.MoveExtended)
	h.OnMove("03-classic", board.MoveExtended)
	h.OnMove("03-classic", board.MoveBlocked)
	h.OnSolved("03-classic", 31)

	values := gather(t, m)
	assert.InDelta(t, 2, values[`flow_moves_total{result="extended"}`], 0)
	assert.InDelta(t, 1, values[`flow_moves_total{result="blocked"}`], 0)
	assert.InDelta(t, 1, values[`flow_levels_solved_total{level="03-classic"}`], 0)
	assert.NotContains(t, values, `flow_moves_total{result="cursor"}`)
}

func TestNilMetricsHooks(t *testing.T) {
	var m *telemetry.Metrics
	h := m.Hooks()
	assert.Nil(t, h.OnMove)
	assert.Nil(t, h.OnSolved)
}

func TestHandler(t *testing.T) {
	m := telemetry.New()
	m.Solved("01-warmup")
	srv := httptest.NewServer(telemetry.NewHandler(m))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `flow_levels_solved_total{level="01-warmup"} 1`)

	resp, err = http.Post(srv.URL+"/metrics", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
