// Package metrics holds the Prometheus collectors exported by n8n-mcp.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	toolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "n8n_mcp_tool_calls_total",
			Help: "Tool invocations by tool name and outcome",
		},
		[]string{"tool", "outcome"},
	)

	toolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "n8n_mcp_tool_call_duration_seconds",
			Help:    "Duration of tool invocations including the backend call",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	backendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "n8n_mcp_backend_requests_total",
			Help: "Requests sent to the n8n REST API by method and status code",
		},
		[]string{"method", "status"},
	)

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "n8n_mcp_sessions_active",
		Help: "Live sessions in streamable-http mode",
	})

	sessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "n8n_mcp_sessions_total",
			Help: "Session lifecycle events",
		},
		[]string{"event"},
	)
)

// Tool call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ObserveToolCall records one tool invocation.
func ObserveToolCall(tool string, isError bool, d time.Duration) {
	outcome := OutcomeSuccess
	if isError {
		outcome = OutcomeError
	}
	toolCalls.WithLabelValues(tool, outcome).Inc()
	toolCallDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// ObserveBackendRequest records one outbound n8n request. A status of 0
// means the request failed before a response arrived.
func ObserveBackendRequest(method string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	backendRequests.WithLabelValues(method, label).Inc()
}

// SessionCreated records a newly registered session.
func SessionCreated() {
	sessionsActive.Inc()
	sessionEvents.WithLabelValues("created").Inc()
}

// SessionTerminated records a session leaving the table.
func SessionTerminated() {
	sessionsActive.Dec()
	sessionEvents.WithLabelValues("terminated").Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
