package monitoring

import (
	"sync"
	"time"
)

// Monitor collects in-process session metrics. There is no exporter; the
// numbers are for the session log and tests.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value.
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// Increment adds delta to an integer metric, creating it at delta.
func (m *Monitor) Increment(name string, delta int) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	current, _ := m.metrics[name].(int)
	m.metrics[name] = current + delta
}

// GetMetric returns a specific metric value.
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics.
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics.
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordSubmission records a successful order submission.
func (m *Monitor) RecordSubmission(branch string) {
	m.Increment("orders_submitted_total", 1)
	m.Increment("orders_submitted_"+branch, 1)
	m.RecordMetric("last_submitted_at", time.Now().Format(time.RFC3339))
}

// RecordPruned records how many expired orders a load removed.
func (m *Monitor) RecordPruned(count int) {
	m.Increment("orders_pruned_total", count)
}

// RecordDraftRecovered records that a saved draft was restored.
func (m *Monitor) RecordDraftRecovered() {
	m.Increment("drafts_recovered_total", 1)
}
