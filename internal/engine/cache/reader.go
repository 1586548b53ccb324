package cache

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// lookup fetches and validates the cache entry stored under key.
// It returns (nil, nil) when no entry exists. Any decode failure or
// unreachable referenced content fails the whole lookup; a partial result
// is never returned.
func (r *Runner) lookup(ctx context.Context, key domain.Fingerprint) (*domain.ExecutionResult, error) {
	var entry domain.Entry
	found, err := r.store.LoadBytesWith(ctx, key, func(data []byte) error {
		if err := json.Unmarshal(data, &entry); err != nil {
			return zerr.Wrap(err, "could not decode cache entry envelope")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var response domain.ExecuteResponse
	if err := json.Unmarshal(entry.ResponseBytes, &response); err != nil {
		return nil, zerr.Wrap(err, "could not decode execute response")
	}
	if response.Result == nil {
		return nil, domain.ErrMissingActionResult
	}

	result := resultFromRecord(response.Result, entry.Platform)

	// All referenced content must be loadable for the entry to count as a
	// hit. The three checks run concurrently and are jointly awaited.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.contentStore.EnsureLocalHasFile(ctx, result.StdoutDigest)
	})
	g.Go(func() error {
		return r.contentStore.EnsureLocalHasFile(ctx, result.StderrDigest)
	})
	g.Go(func() error {
		return r.contentStore.EnsureLocalHasRecursiveDirectory(ctx, result.OutputDirectory)
	})
	if err := g.Wait(); err != nil {
		return nil, zerr.Wrap(err, "cache entry references unreachable content")
	}

	return result, nil
}

// resultFromRecord reconstructs an execution result from its persisted form,
// tagged as served from the local cache.
func resultFromRecord(record *domain.ActionResult, platform domain.Platform) *domain.ExecutionResult {
	outputDirectory := domain.EmptyDigest
	if len(record.OutputDirectories) > 0 {
		outputDirectory = record.OutputDirectories[0].TreeDigest
	}

	return &domain.ExecutionResult{
		ExitCode:        record.ExitCode,
		StdoutDigest:    record.StdoutDigest,
		StderrDigest:    record.StderrDigest,
		OutputDirectory: outputDirectory,
		Metadata:        record.ExecutionMetadata,
		Source:          domain.SourceHitLocally,
		Platform:        platform,
	}
}
