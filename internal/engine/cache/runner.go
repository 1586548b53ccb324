// Package cache implements a local content-addressed result cache in front
// of a process runner. The cache is a pure optimization: read errors fall
// through to execution, write errors are logged and dropped, and only the
// underlying runner's own failure fails a run.
package cache

import (
	"context"
	"time"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
)

var _ ports.Runner = (*Runner)(nil)

// Runner decorates an underlying runner with cache lookup and write-back.
type Runner struct {
	underlying   ports.Runner
	store        ports.ExecutionStore
	contentStore ports.ContentStore
	keyer        ports.KeyDeriver
	metadata     *domain.Metadata

	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics
}

// New creates a caching runner around underlying.
func New(
	underlying ports.Runner,
	store ports.ExecutionStore,
	contentStore ports.ContentStore,
	keyer ports.KeyDeriver,
	metadata *domain.Metadata,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Runner {
	return &Runner{
		underlying:   underlying,
		store:        store,
		contentStore: contentStore,
		keyer:        keyer,
		metadata:     metadata,
		logger:       logger,
		tracer:       tracer,
		metrics:      metrics,
	}
}

// ExtractCompatibleRequest delegates to the underlying runner.
func (r *Runner) ExtractCompatibleRequest(req *domain.Request) *domain.Process {
	return r.underlying.ExtractCompatibleRequest(req)
}

// readOutcome is the explicit result of a cache read attempt: a validated
// hit, or a fallthrough to execution.
type readOutcome struct {
	hit    bool
	result *domain.ExecutionResult
}

// Run serves req from the cache when possible, otherwise delegates to the
// underlying runner and writes eligible results back.
func (r *Runner) Run(ctx context.Context, req *domain.Request) (*domain.ExecutionResult, error) {
	lookupStart := time.Now()
	scope := req.CacheScope()
	key := r.keyer.DeriveKey(req, r.metadata)

	if outcome := r.attemptRead(ctx, key, req, scope, lookupStart); outcome.hit {
		return outcome.result, nil
	}

	result, err := r.underlying.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	if Eligible(result, scope) {
		r.writeBack(ctx, key, result)
	}
	return result, nil
}

func (r *Runner) attemptRead(
	ctx context.Context,
	key domain.Fingerprint,
	req *domain.Request,
	scope domain.CacheScope,
	lookupStart time.Time,
) readOutcome {
	name := req.UserFacingName()
	ctx, span := r.tracer.Start(ctx, "local_cache_read",
		ports.WithDescription("Local cache lookup: "+name))
	defer span.End()

	r.metrics.IncrementCounter(ctx, ports.MetricCacheRequests, 1)

	result, err := r.lookup(ctx, key)
	switch {
	case err != nil:
		// A cache read error never fails the run.
		r.logger.Debug("error loading cached result: " + err.Error() + " - continuing to execute")
		span.RecordError(err)
		r.metrics.IncrementCounter(ctx, ports.MetricCacheReadErrors, 1)
		return readOutcome{}
	case result == nil || !Eligible(result, scope):
		// Either a miss, or a hit for an ineligible failing result.
		r.metrics.IncrementCounter(ctx, ports.MetricCacheMisses, 1)
		return readOutcome{}
	}

	r.metrics.IncrementCounter(ctx, ports.MetricCacheHits, 1)
	if saved, ok := result.Metadata.TimeSavedFromCache(time.Since(lookupStart)); ok {
		ms := uint64(saved.Milliseconds())
		r.metrics.IncrementCounter(ctx, ports.MetricCacheTimeSavedTotalMs, ms)
		r.metrics.RecordObservation(ctx, ports.ObservationCacheTimeSavedMs, saved.Milliseconds())
	}
	span.SetName("Hit: Local cache lookup: " + name)
	span.SetAttribute("cache.hit", true)

	return readOutcome{hit: true, result: result}
}

func (r *Runner) writeBack(ctx context.Context, key domain.Fingerprint, result *domain.ExecutionResult) {
	ctx, span := r.tracer.Start(ctx, "local_cache_write")
	defer span.End()

	if err := r.storeResult(ctx, key, result); err != nil {
		// A cache write error never fails the run.
		r.logger.Warn("error storing result to local cache: " + err.Error() + " - ignoring and continuing")
		span.RecordError(err)
		r.metrics.IncrementCounter(ctx, ports.MetricCacheWriteErrors, 1)
	}
}
