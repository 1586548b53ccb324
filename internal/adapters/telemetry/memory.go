package telemetry

import (
	"context"
	"sync"
)

// MemoryMetrics is an in-memory ports.Metrics used in tests and when no
// exporter is configured.
type MemoryMetrics struct {
	mu           sync.Mutex
	counters     map[string]uint64
	observations map[string][]int64
}

// NewMemoryMetrics creates an empty MemoryMetrics.
func NewMemoryMetrics() *MemoryMetrics {
	return &MemoryMetrics{
		counters:     make(map[string]uint64),
		observations: make(map[string][]int64),
	}
}

// IncrementCounter adds n to the named counter.
func (m *MemoryMetrics) IncrementCounter(_ context.Context, name string, n uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += n
}

// RecordObservation appends an observation of the named metric.
func (m *MemoryMetrics) RecordObservation(_ context.Context, name string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observations[name] = append(m.observations[name], value)
}

// Counter returns the current value of the named counter.
func (m *MemoryMetrics) Counter(name string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// Observations returns the recorded observations of the named metric.
func (m *MemoryMetrics) Observations(name string) []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int64, len(m.observations[name]))
	copy(out, m.observations[name])
	return out
}
