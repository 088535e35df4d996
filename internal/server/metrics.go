package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mj1618/a11y-bridge/internal/a11y"
)

// Metrics records bridge lifecycle events and tool calls. It implements
// a11y.Observer and registers on its own registry.
type Metrics struct {
	registry     *prometheus.Registry
	liveAdapters prometheus.Gauge
	created      prometheus.Counter
	released     prometheus.Counter
	focusChanges prometheus.Counter
	violations   prometheus.Counter
	toolCalls    *prometheus.CounterVec
	toolDuration *prometheus.HistogramVec
}

var _ a11y.Observer = (*Metrics)(nil)

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		liveAdapters: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "a11y_bridge_live_adapters",
			Help: "Adapters currently held by the identity map",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "a11y_bridge_adapters_created_total",
			Help: "Total number of adapters created",
		}),
		released: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "a11y_bridge_adapters_released_total",
			Help: "Total number of adapters released",
		}),
		focusChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "a11y_bridge_focus_changes_total",
			Help: "Total number of focus transitions",
		}),
		violations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "a11y_bridge_invariant_violations_total",
			Help: "Total number of detected bridge invariant violations",
		}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "a11y_bridge_tool_calls_total",
			Help: "Total number of MCP tool calls",
		}, []string{"tool", "outcome"}),
		toolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "a11y_bridge_tool_duration_seconds",
			Help: "Duration of MCP tool calls",
		}, []string{"tool"}),
	}
	m.registry.MustRegister(m.liveAdapters, m.created, m.released, m.focusChanges,
		m.violations, m.toolCalls, m.toolDuration)
	return m
}

func (m *Metrics) AdapterCreated(*a11y.Adapter) {
	m.created.Inc()
	m.liveAdapters.Inc()
}

func (m *Metrics) AdapterReleased(*a11y.Adapter) {
	m.released.Inc()
	m.liveAdapters.Dec()
}

func (m *Metrics) FocusChanged(_, _ *a11y.Adapter) { m.focusChanges.Inc() }

func (m *Metrics) InvariantViolated(error) { m.violations.Inc() }

// ObserveTool records one tool call.
func (m *Metrics) ObserveTool(tool string, isError bool, elapsed time.Duration) {
	outcome := "ok"
	if isError {
		outcome = "error"
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// Registry exposes the collectors, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
