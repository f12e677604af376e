package ingestion

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// IngestMetrics tracks ingestion throughput.
type IngestMetrics struct {
	MessagesReceived      int64
	MessagesProcessed     int64
	MessagesFailed        int64
	MessagesDropped       int64
	HeartbeatsRecorded    int64
	EventsInserted        int64
	UnassignedAlerts      int64
	LastProcessedAt       time.Time
	AverageProcessingTime time.Duration
	BufferSize            int
}

// Fields renders the snapshot for a log line.
func (m IngestMetrics) Fields() []zap.Field {
	return []zap.Field{
		zap.Int64("received", m.MessagesReceived),
		zap.Int64("processed", m.MessagesProcessed),
		zap.Int64("failed", m.MessagesFailed),
		zap.Int64("dropped", m.MessagesDropped),
		zap.Int64("heartbeats", m.HeartbeatsRecorded),
		zap.Int64("events", m.EventsInserted),
		zap.Int64("unassigned_alerts", m.UnassignedAlerts),
		zap.Duration("avg_processing", m.AverageProcessingTime),
		zap.Int("buffer", m.BufferSize),
	}
}

// MetricsTracker provides a goroutine-safe wrapper around IngestMetrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics IngestMetrics
}

func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

func (t *MetricsTracker) Update(fn func(*IngestMetrics)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.metrics)
}

// observe records a successful message and folds its latency into the
// running average.
func (t *MetricsTracker) observe(took time.Duration, at time.Time) {
	t.Update(func(m *IngestMetrics) {
		m.MessagesProcessed++
		m.LastProcessedAt = at
		if m.AverageProcessingTime == 0 {
			m.AverageProcessingTime = took
		} else {
			m.AverageProcessingTime = (m.AverageProcessingTime + took) / 2
		}
	})
}

func (t *MetricsTracker) Snapshot() IngestMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}
