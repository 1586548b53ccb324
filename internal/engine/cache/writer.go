package cache

import (
	"context"
	"encoding/json"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/zerr"
)

// store persists result under key, replacing any prior entry. Failures are
// returned to the caller, which treats them as non-fatal.
func (r *Runner) storeResult(ctx context.Context, key domain.Fingerprint, result *domain.ExecutionResult) error {
	record := domain.ActionResult{
		ExitCode: result.ExitCode,
		OutputDirectories: []domain.OutputDirectory{
			{Path: "", TreeDigest: result.OutputDirectory},
		},
		StdoutDigest:      result.StdoutDigest,
		StderrDigest:      result.StderrDigest,
		ExecutionMetadata: result.Metadata,
	}
	response := domain.ExecuteResponse{
		CachedResult: true,
		Result:       &record,
	}

	responseBytes, err := json.Marshal(response)
	if err != nil {
		return zerr.Wrap(err, "could not encode execute response")
	}

	entryBytes, err := json.Marshal(domain.Entry{
		Platform:      result.Platform,
		ResponseBytes: responseBytes,
	})
	if err != nil {
		return zerr.Wrap(err, "could not encode cache entry envelope")
	}

	return r.store.StoreBytes(ctx, key, entryBytes, true)
}
