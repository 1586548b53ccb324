package ports

import "context"

// Counter and observation names emitted by the cache layer.
const (
	MetricCacheRequests         = "local_cache.requests"
	MetricCacheHits             = "local_cache.requests_cached"
	MetricCacheMisses           = "local_cache.requests_uncached"
	MetricCacheReadErrors       = "local_cache.read_errors"
	MetricCacheWriteErrors      = "local_cache.write_errors"
	MetricCacheTimeSavedTotalMs = "local_cache.total_time_saved_ms"

	ObservationCacheTimeSavedMs = "local_cache.time_saved_ms"
)

// Metrics records counters and observations for cache activity.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// IncrementCounter adds n to the named counter.
	IncrementCounter(ctx context.Context, name string, n uint64)

	// RecordObservation records a single observation of the named metric.
	RecordObservation(ctx context.Context, name string, value int64)
}
