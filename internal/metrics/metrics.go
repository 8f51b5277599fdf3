package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for agent runs and tool calls
type Metrics struct {
	registry *prometheus.Registry

	AgentRunsTotal   *prometheus.CounterVec
	ToolCallsTotal   *prometheus.CounterVec
	ToolCallDuration *prometheus.HistogramVec
}

// New creates and registers all metrics on a private registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		AgentRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agent_runs_total",
				Help: "Total number of agent sessions by outcome",
			},
			[]string{"status"},
		),
		ToolCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_calls_total",
				Help: "Total number of tool invocations by outcome",
			},
			[]string{"tool", "status"},
		),
		ToolCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tool_call_duration_seconds",
				Help:    "Duration of tool invocations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
	}

	registry.MustRegister(m.AgentRunsTotal, m.ToolCallsTotal, m.ToolCallDuration)
	return m
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordRun counts one finished agent session
func (m *Metrics) RecordRun(err error) {
	if m == nil {
		return
	}
	m.AgentRunsTotal.WithLabelValues(status(err)).Inc()
}

// RecordToolCall counts one tool invocation and its latency
func (m *Metrics) RecordToolCall(tool string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ToolCallsTotal.WithLabelValues(tool, status(err)).Inc()
	m.ToolCallDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// Registry exposes the underlying registry for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler serving /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
