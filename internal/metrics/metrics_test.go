package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-life/internal/life"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(reg), reg
}

func TestRecorderObserveStep(t *testing.T) {
	m, _ := newTestMetrics(t)
	r := NewRecorder(m, "tui")

	r.ObserveStep(time.Millisecond, 42)
	r.ObserveStep(time.Millisecond, 40)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("tui")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.Population.WithLabelValues("tui")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.StepDurationSeconds))
}

func TestRecorderObserveBrushAndResize(t *testing.T) {
	m, _ := newTestMetrics(t)
	r := NewRecorder(m, "ssh")

	r.ObserveBrush(life.BrushDraw, 9)
	r.ObserveBrush(life.BrushErase, 1)
	r.ObserveResize(life.GridDims{Columns: 3, Rows: 3})

	assert.Equal(t, 9.0, testutil.ToFloat64(m.BrushCellsTotal.WithLabelValues("ssh", "draw")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BrushCellsTotal.WithLabelValues("ssh", "erase")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResizesTotal.WithLabelValues("ssh")))
}

func TestNilRecorderDrops(t *testing.T) {
	var r *Recorder
	r.ObserveStep(time.Second, 1)
	NewRecorder(nil, "gui").ObserveBrush(life.BrushDraw, 3)
}

func TestRecorderWiredIntoEngine(t *testing.T) {
	m, _ := newTestMetrics(t)
	e := life.New(life.Config{FrameLengthMs: 10, CellSize: 1, Rules: life.Conway(), Seed: 1},
		life.WithObserver(NewRecorder(m, "simulate")))
	e.SetViewport(16, 16)
	e.Reset()
	for i := 0; i < 5; i++ {
		e.Step(time.Now())
	}

	assert.Equal(t, 5.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("simulate")))
	assert.Equal(t, float64(e.Grid().LiveCount()), testutil.ToFloat64(m.Population.WithLabelValues("simulate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResizesTotal.WithLabelValues("simulate")))
}

func TestSessions(t *testing.T) {
	m, _ := newTestMetrics(t)
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsTotal))
}

func TestHandlerFor(t *testing.T) {
	m, reg := newTestMetrics(t)
	m.ConfigReloadsTotal.Inc()

	rec := httptest.NewRecorder()
	HandlerFor(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "life_config_reloads_total 1"))
}
