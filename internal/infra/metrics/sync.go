package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Poll outcomes.
const (
	PollKept      = "kept"
	PollReplaced  = "replaced"
	PollFailed    = "failed"
	PollDiscarded = "discarded"
)

// SyncMetrics records catalog synchronization activity. A nil *SyncMetrics is
// a valid no-op.
type SyncMetrics struct {
	polls    *prometheus.CounterVec
	duration prometheus.Histogram
	writes   *prometheus.CounterVec
}

// NewSyncMetrics registers the sync metrics on reg.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	if reg == nil {
		return &SyncMetrics{}
	}
	polls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_sync_polls_total",
		Help: "Remote catalog polls by outcome.",
	}, []string{"result"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_sync_poll_duration_seconds",
		Help:    "Duration of remote catalog fetches in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_writes_total",
		Help: "Catalog mutations by operation and result.",
	}, []string{"op", "result"})
	reg.MustRegister(polls, duration, writes)
	return &SyncMetrics{polls: polls, duration: duration, writes: writes}
}

func (m *SyncMetrics) ObservePoll(result string, d time.Duration) {
	if m == nil || m.polls == nil {
		return
	}
	m.polls.WithLabelValues(result).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *SyncMetrics) IncWrite(op string, err error) {
	if m == nil || m.writes == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.writes.WithLabelValues(op, result).Inc()
}
