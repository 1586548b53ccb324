// Package shell provides the local process runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"time"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner executes processes locally via os/exec and captures their outputs
// into the content store.
type Runner struct {
	contentStore ports.ContentStore
	logger       ports.Logger
}

// NewRunner creates a local runner.
func NewRunner(contentStore ports.ContentStore, logger ports.Logger) *Runner {
	return &Runner{
		contentStore: contentStore,
		logger:       logger,
	}
}

// ExtractCompatibleRequest returns the variant matching the current
// platform, or nil.
func (r *Runner) ExtractCompatibleRequest(req *domain.Request) *domain.Process {
	return req.Variants[domain.CurrentPlatform()]
}

// Run executes the compatible variant of req. A non-zero exit code is
// returned as a result; only a process that could not be started at all is
// an error.
func (r *Runner) Run(ctx context.Context, req *domain.Request) (*domain.ExecutionResult, error) {
	proc := r.ExtractCompatibleRequest(req)
	if proc == nil {
		return nil, zerr.With(domain.ErrNoCompatibleVariant, "platform", string(domain.CurrentPlatform()))
	}
	if len(proc.Argv) == 0 {
		return nil, zerr.New("process has no command")
	}

	cmd := exec.CommandContext(ctx, proc.Argv[0], proc.Argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = proc.WorkingDir
	cmd.Env = mergeEnvironment(os.Environ(), proc.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("executing: " + proc.Argv[0])

	started := time.Now()
	runErr := cmd.Run()
	finished := time.Now()

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, zerr.Wrap(runErr, "failed to execute process")
		}
		exitCode = exitErr.ExitCode()
	}

	stdoutDigest, err := r.contentStore.WriteBlob(ctx, stdout.Bytes())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to store stdout")
	}
	stderrDigest, err := r.contentStore.WriteBlob(ctx, stderr.Bytes())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to store stderr")
	}

	captureRoot := proc.WorkingDir
	if captureRoot == "" {
		captureRoot = "."
	}
	outputTree, err := r.contentStore.CaptureTree(ctx, captureRoot, proc.OutputPaths)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to capture output tree")
	}

	return &domain.ExecutionResult{
		ExitCode:        exitCode,
		StdoutDigest:    stdoutDigest,
		StderrDigest:    stderrDigest,
		OutputDirectory: outputTree,
		Metadata: domain.ExecutionMetadata{
			StartedAt:  started,
			FinishedAt: finished,
		},
		Source:   domain.SourceRanLocally,
		Platform: proc.Platform,
	}, nil
}

// mergeEnvironment overlays the process env on the system environment,
// with deterministic ordering of the overlay.
func mergeEnvironment(base []string, overlay map[string]string) []string {
	merged := make([]string, 0, len(base)+len(overlay))
	merged = append(merged, base...)

	keys := make([]string, 0, len(overlay))
	for k := range overlay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+overlay[k])
	}
	return merged
}
