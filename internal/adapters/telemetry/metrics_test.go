package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.trai.ch/runcache/internal/adapters/telemetry"
	"go.trai.ch/runcache/internal/core/ports"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestOTelMetrics_CounterIncrements(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := telemetry.NewOTelMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	metrics.IncrementCounter(ctx, ports.MetricCacheRequests, 1)
	metrics.IncrementCounter(ctx, ports.MetricCacheRequests, 2)
	metrics.IncrementCounter(ctx, ports.MetricCacheHits, 1)

	rm := collect(t, reader)

	requests, ok := findMetric(rm, ports.MetricCacheRequests)
	require.True(t, ok)
	sum, ok := requests.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	require.Equal(t, int64(3), sum.DataPoints[0].Value)

	hits, ok := findMetric(rm, ports.MetricCacheHits)
	require.True(t, ok)
	sum, ok = hits.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Equal(t, int64(1), sum.DataPoints[0].Value)
}

func TestOTelMetrics_UnknownCounterIsDropped(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := telemetry.NewOTelMetrics(provider.Meter("test"))
	require.NoError(t, err)

	metrics.IncrementCounter(context.Background(), "no_such_counter", 5)

	rm := collect(t, reader)
	_, ok := findMetric(rm, "no_such_counter")
	require.False(t, ok)
}

func TestOTelMetrics_TimeSavedObservation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := telemetry.NewOTelMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	metrics.RecordObservation(ctx, ports.ObservationCacheTimeSavedMs, 120)
	metrics.RecordObservation(ctx, ports.ObservationCacheTimeSavedMs, 80)

	rm := collect(t, reader)
	saved, ok := findMetric(rm, ports.ObservationCacheTimeSavedMs)
	require.True(t, ok)
	hist, ok := saved.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(2), hist.DataPoints[0].Count)
	require.Equal(t, int64(200), hist.DataPoints[0].Sum)
}

func TestMemoryMetrics_RecordsCountersAndObservations(t *testing.T) {
	metrics := telemetry.NewMemoryMetrics()
	ctx := context.Background()

	metrics.IncrementCounter(ctx, ports.MetricCacheMisses, 2)
	metrics.IncrementCounter(ctx, ports.MetricCacheMisses, 1)
	metrics.RecordObservation(ctx, ports.ObservationCacheTimeSavedMs, 42)

	require.Equal(t, uint64(3), metrics.Counter(ports.MetricCacheMisses))
	require.Equal(t, []int64{42}, metrics.Observations(ports.ObservationCacheTimeSavedMs))
}
