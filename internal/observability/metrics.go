package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	ActiveSessions prometheus.Gauge
	SessionEvents  *prometheus.CounterVec
	Turns          *prometheus.CounterVec
	IntentMatches  *prometheus.CounterVec
	WSMessages     *prometheus.CounterVec
	WSWriteErrors  *prometheus.CounterVec
	ReplyLatency   prometheus.Histogram

	replyWindow *replyStageWindow
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of active chat sessions.",
		}),
		SessionEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Session events by type.",
		}, []string{"event"}),
		Turns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Transcript turns appended by role.",
		}, []string{"role"}),
		IntentMatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intent_matches_total",
			Help:      "Matched response rules by name.",
		}, []string{"rule"}),
		WSMessages: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_messages_total",
			Help:      "WebSocket messages by direction and type.",
		}, []string{"direction", "type"}),
		WSWriteErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ws_write_errors_total",
			Help:      "WebSocket write failures by stage.",
		}, []string{"stage"}),
		ReplyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reply_latency_ms",
			Help:      "Latency from input submission to assistant turn append in milliseconds.",
			Buckets:   []float64{50, 100, 200, 400, 800, 1200, 1600, 2400},
		}),
		replyWindow: newReplyStageWindow(256),
	}
}

// ObserveReplyLatency records the submit-to-reply latency of one turn.
func (m *Metrics) ObserveReplyLatency(d time.Duration) {
	ms := float64(d.Milliseconds())
	m.ReplyLatency.Observe(ms)
	m.replyWindow.Observe("submit_to_reply", ms)
}

// ObserveReplyStage records a sub-stage latency in the sliding window.
func (m *Metrics) ObserveReplyStage(stage string, d time.Duration) {
	m.replyWindow.Observe(stage, float64(d.Microseconds())/1000)
}

// ObserveIntent counts one matched response rule.
func (m *Metrics) ObserveIntent(rule string) {
	m.IntentMatches.WithLabelValues(rule).Inc()
	m.replyWindow.ObserveIndicator(rule)
}

// SnapshotReplyStages exposes the sliding latency window for the perf endpoint.
func (m *Metrics) SnapshotReplyStages() ReplyStageSnapshot {
	return m.replyWindow.Snapshot()
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
