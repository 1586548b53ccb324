package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.trai.ch/runcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*OTelMetrics)(nil)

// OTelMetrics implements ports.Metrics with OpenTelemetry counters and a
// histogram for the time-saved observation.
type OTelMetrics struct {
	counters  map[string]metric.Int64Counter
	timeSaved metric.Int64Histogram
}

// NewOTelMetrics creates the cache instruments on the given meter.
func NewOTelMetrics(meter metric.Meter) (*OTelMetrics, error) {
	counters := make(map[string]metric.Int64Counter)
	for name, desc := range map[string]string{
		ports.MetricCacheRequests:         "Local cache lookups attempted",
		ports.MetricCacheHits:             "Local cache lookups served from cache",
		ports.MetricCacheMisses:           "Local cache lookups that fell through to execution",
		ports.MetricCacheReadErrors:       "Local cache read failures",
		ports.MetricCacheWriteErrors:      "Local cache write failures",
		ports.MetricCacheTimeSavedTotalMs: "Total execution time avoided by cache hits",
	} {
		counter, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create counter")
		}
		counters[name] = counter
	}

	timeSaved, err := meter.Int64Histogram(
		ports.ObservationCacheTimeSavedMs,
		metric.WithDescription("Execution time avoided by a single cache hit"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create histogram")
	}

	return &OTelMetrics{
		counters:  counters,
		timeSaved: timeSaved,
	}, nil
}

// IncrementCounter adds n to the named counter. Unknown names are dropped.
func (m *OTelMetrics) IncrementCounter(ctx context.Context, name string, n uint64) {
	if counter, ok := m.counters[name]; ok {
		counter.Add(ctx, int64(n)) //nolint:gosec // counter deltas stay far below int64 max
	}
}

// RecordObservation records a single observation of the named metric.
func (m *OTelMetrics) RecordObservation(ctx context.Context, name string, value int64) {
	if name == ports.ObservationCacheTimeSavedMs {
		m.timeSaved.Record(ctx, value)
	}
}
