package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runcache/cmd/runcache/commands"
	"go.trai.ch/runcache/internal/app"
	"go.trai.ch/runcache/internal/build"
	"go.trai.ch/runcache/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, argv []string, opts app.RunOptions) (int, error)
}

func (m *mockApp) Run(ctx context.Context, argv []string, opts app.RunOptions) (int, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, argv, opts)
	}
	return 0, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedArgv []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, argv []string, opts app.RunOptions) (int, error) {
				capturedOpts = opts
				capturedArgv = argv
				called = true
				return 0, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"run",
			"-d", "compile",
			"-w", "/tmp/work",
			"-o", "bin/app",
			"-o", "bin/app.map",
			"--scope", "always",
			"--", "make", "all",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, []string{"make", "all"}, capturedArgv)
		assert.Equal(t, "compile", capturedOpts.Description)
		assert.Equal(t, "/tmp/work", capturedOpts.WorkingDir)
		assert.Equal(t, []string{"bin/app", "bin/app.map"}, capturedOpts.OutputPaths)
		assert.Equal(t, domain.ScopeAlways, capturedOpts.Scope)
	})

	t.Run("propagates process exit code", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (int, error) {
				return 7, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--", "false"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, cli.ExitCode())
	})

	t.Run("rejects invalid scope", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (int, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--scope", "sometimes", "--", "true"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid scope")
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (int, error) {
				return 0, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "--", "broken"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no command provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (int, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
