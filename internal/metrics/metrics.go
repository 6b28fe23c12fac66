// Package metrics exposes engine and server activity as Prometheus metrics.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-life/internal/life"
)

const namespace = "life"

// Metrics holds every collector. Create one per registry.
type Metrics struct {
	GenerationsTotal    *prometheus.CounterVec
	StepDurationSeconds *prometheus.HistogramVec
	Population          *prometheus.GaugeVec
	BrushCellsTotal     *prometheus.CounterVec
	ResizesTotal        *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
	SessionsTotal       prometheus.Counter
	ConfigReloadsTotal  prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Generations stepped, by host",
			},
			[]string{"host"},
		),

		StepDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "step_duration_seconds",
				Help:      "Time to compute one generation",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
			},
			[]string{"host"},
		),

		Population: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "population",
				Help:      "Live cells after the last generation, by host",
			},
			[]string{"host"},
		),

		BrushCellsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "brush_cells_total",
				Help:      "Cells written by the draw overlay, by host and brush mode",
			},
			[]string{"host", "mode"},
		),

		ResizesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resizes_total",
				Help:      "Grid resizes and resets, by host",
			},
			[]string{"host"},
		),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "active_sessions",
			Help:      "Currently connected SSH sessions",
		}),

		SessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ssh",
			Name:      "sessions_total",
			Help:      "SSH sessions accepted",
		}),

		ConfigReloadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_reloads_total",
			Help:      "Settings files reloaded from disk",
		}),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the metrics registered with the global registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

// Handler serves the global registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HandlerFor serves a specific registry.
func HandlerFor(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Recorder adapts Metrics to life.StepObserver for one host.
type Recorder struct {
	m    *Metrics
	host string
}

var _ life.StepObserver = (*Recorder)(nil)

// NewRecorder labels every observation with host. A nil m yields a
// recorder that drops observations.
func NewRecorder(m *Metrics, host string) *Recorder {
	return &Recorder{m: m, host: host}
}

// ObserveStep implements life.StepObserver.
func (r *Recorder) ObserveStep(elapsed time.Duration, population int) {
	if r == nil || r.m == nil {
		return
	}
	r.m.GenerationsTotal.WithLabelValues(r.host).Inc()
	r.m.StepDurationSeconds.WithLabelValues(r.host).Observe(elapsed.Seconds())
	r.m.Population.WithLabelValues(r.host).Set(float64(population))
}

// ObserveBrush implements life.StepObserver.
func (r *Recorder) ObserveBrush(mode life.BrushMode, cells int) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BrushCellsTotal.WithLabelValues(r.host, mode.String()).Add(float64(cells))
}

// ObserveResize implements life.StepObserver.
func (r *Recorder) ObserveResize(life.GridDims) {
	if r == nil || r.m == nil {
		return
	}
	r.m.ResizesTotal.WithLabelValues(r.host).Inc()
}

// SessionStarted and SessionEnded track SSH sessions.
func (m *Metrics) SessionStarted() {
	m.SessionsTotal.Inc()
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionEnded() {
	m.ActiveSessions.Dec()
}
