package domain

import "time"

// ResultSource records where an execution result came from.
type ResultSource string

const (
	// SourceRanLocally marks a result produced by actually running the process.
	SourceRanLocally ResultSource = "ran_locally"
	// SourceHitLocally marks a result served from the local cache.
	SourceHitLocally ResultSource = "hit_locally"
)

// ExecutionMetadata carries timing information for a single execution.
type ExecutionMetadata struct {
	StartedAt  time.Time `json:"started_at,omitzero"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}

// Duration returns the wall-clock duration of the execution.
func (m ExecutionMetadata) Duration() time.Duration {
	if m.StartedAt.IsZero() || m.FinishedAt.IsZero() {
		return 0
	}
	return m.FinishedAt.Sub(m.StartedAt)
}

// TimeSavedFromCache returns how much wall-clock time a cache hit saved,
// given the time spent on the lookup itself. The second return value is
// false when the lookup took at least as long as the original execution.
func (m ExecutionMetadata) TimeSavedFromCache(lookupElapsed time.Duration) (time.Duration, bool) {
	saved := m.Duration() - lookupElapsed
	if saved <= 0 {
		return 0, false
	}
	return saved, true
}

// ExecutionResult is the observed outcome of running a process.
type ExecutionResult struct {
	ExitCode        int
	StdoutDigest    Digest
	StderrDigest    Digest
	OutputDirectory Digest
	Metadata        ExecutionMetadata
	Source          ResultSource
	Platform        Platform
}
