package shell_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/runcache/internal/adapters/cas"
	"go.trai.ch/runcache/internal/adapters/logger"
	"go.trai.ch/runcache/internal/adapters/shell"
	"go.trai.ch/runcache/internal/core/domain"
)

func setupRunner(t *testing.T) (*shell.Runner, *cas.Store) {
	t.Helper()
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "cas"))
	require.NoError(t, err)
	return shell.NewRunner(store, logger.New(slog.LevelError)), store
}

func request(proc *domain.Process) *domain.Request {
	if proc.Platform == "" {
		proc.Platform = domain.CurrentPlatform()
	}
	return domain.NewRequest(proc)
}

func TestRun_CapturesStdout(t *testing.T) {
	runner, store := setupRunner(t)
	ctx := context.Background()

	result, err := runner.Run(ctx, request(&domain.Process{
		Argv: []string{"echo", "hello"},
	}))
	require.NoError(t, err)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, domain.SourceRanLocally, result.Source)

	stdout, err := store.ReadBlob(ctx, result.StdoutDigest)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(stdout))
	require.True(t, result.StderrDigest.IsEmpty())
	require.False(t, result.Metadata.FinishedAt.Before(result.Metadata.StartedAt))
}

func TestRun_NonZeroExitIsAResult(t *testing.T) {
	runner, _ := setupRunner(t)

	result, err := runner.Run(context.Background(), request(&domain.Process{
		Argv: []string{"sh", "-c", "exit 3"},
	}))
	require.NoError(t, err)
	require.Equal(t, 3, result.ExitCode)
}

func TestRun_MissingBinaryIsAnError(t *testing.T) {
	runner, _ := setupRunner(t)

	_, err := runner.Run(context.Background(), request(&domain.Process{
		Argv: []string{"definitely-not-a-real-binary-xyz"},
	}))
	require.Error(t, err)
}

func TestRun_EnvironmentOverlay(t *testing.T) {
	runner, store := setupRunner(t)
	ctx := context.Background()

	result, err := runner.Run(ctx, request(&domain.Process{
		Argv: []string{"sh", "-c", "echo $GREETING"},
		Env:  map[string]string{"GREETING": "bonjour"},
	}))
	require.NoError(t, err)

	stdout, err := store.ReadBlob(ctx, result.StdoutDigest)
	require.NoError(t, err)
	require.Equal(t, "bonjour\n", string(stdout))
}

func TestRun_CapturesDeclaredOutputs(t *testing.T) {
	runner, store := setupRunner(t)
	ctx := context.Background()
	workdir := t.TempDir()

	result, err := runner.Run(ctx, request(&domain.Process{
		Argv:        []string{"sh", "-c", "echo artifact > out.txt"},
		WorkingDir:  workdir,
		OutputPaths: []string{"out.txt"},
	}))
	require.NoError(t, err)
	require.False(t, result.OutputDirectory.IsEmpty())
	require.NoError(t, store.EnsureLocalHasRecursiveDirectory(ctx, result.OutputDirectory))

	dest := t.TempDir()
	require.NoError(t, store.MaterializeTree(ctx, result.OutputDirectory, dest))
	data, err := os.ReadFile(filepath.Join(dest, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "artifact\n", string(data))
}

func TestRun_NoCompatibleVariant(t *testing.T) {
	runner, _ := setupRunner(t)

	other := domain.PlatformMacosArm64
	if domain.CurrentPlatform() == other {
		other = domain.PlatformLinuxX8664
	}

	_, err := runner.Run(context.Background(), request(&domain.Process{
		Argv:     []string{"echo", "hi"},
		Platform: other,
	}))
	require.ErrorIs(t, err, domain.ErrNoCompatibleVariant)
}

func TestExtractCompatibleRequest(t *testing.T) {
	runner, _ := setupRunner(t)

	proc := &domain.Process{Argv: []string{"true"}, Platform: domain.CurrentPlatform()}
	req := domain.NewRequest(proc)
	require.Equal(t, proc, runner.ExtractCompatibleRequest(req))
}
