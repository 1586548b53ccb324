// Package app implements the application layer for runcache.
package app

import (
	"context"
	"io"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires a single command invocation through the caching runner.
type App struct {
	runner       ports.Runner
	contentStore ports.ContentStore
	logger       ports.Logger
	defaultScope domain.CacheScope
}

// New creates a new App instance.
func New(runner ports.Runner, contentStore ports.ContentStore, logger ports.Logger, defaultScope domain.CacheScope) *App {
	return &App{
		runner:       runner,
		contentStore: contentStore,
		logger:       logger,
		defaultScope: defaultScope,
	}
}

// RunOptions configures a single invocation.
type RunOptions struct {
	Description string
	WorkingDir  string
	OutputPaths []string
	Scope       domain.CacheScope
	Stdout      io.Writer
	Stderr      io.Writer
}

// Run executes argv through the cache and replays its captured stdout,
// stderr, and outputs. It returns the process exit code.
func (a *App) Run(ctx context.Context, argv []string, opts RunOptions) (int, error) {
	if len(argv) == 0 {
		return 0, zerr.New("no command specified")
	}

	scope := opts.Scope
	if scope == "" {
		scope = a.defaultScope
	}

	req := domain.NewRequest(&domain.Process{
		Description: opts.Description,
		Argv:        argv,
		WorkingDir:  opts.WorkingDir,
		OutputPaths: opts.OutputPaths,
		Scope:       scope,
		Platform:    domain.CurrentPlatform(),
	})

	result, err := a.runner.Run(ctx, req)
	if err != nil {
		return 0, zerr.Wrap(err, "execution failed")
	}

	if err := a.replay(ctx, result, opts); err != nil {
		return 0, err
	}

	if result.Source == domain.SourceHitLocally {
		a.logger.Debug("served from cache: " + req.UserFacingName())
	}
	return result.ExitCode, nil
}

// replay writes the captured stdout/stderr to the caller's streams and, for
// cache hits, restores the captured output tree into the working directory.
func (a *App) replay(ctx context.Context, result *domain.ExecutionResult, opts RunOptions) error {
	if opts.Stdout != nil {
		data, err := a.contentStore.ReadBlob(ctx, result.StdoutDigest)
		if err != nil {
			return zerr.Wrap(err, "failed to read captured stdout")
		}
		if _, err := opts.Stdout.Write(data); err != nil {
			return zerr.Wrap(err, "failed to write stdout")
		}
	}
	if opts.Stderr != nil {
		data, err := a.contentStore.ReadBlob(ctx, result.StderrDigest)
		if err != nil {
			return zerr.Wrap(err, "failed to read captured stderr")
		}
		if _, err := opts.Stderr.Write(data); err != nil {
			return zerr.Wrap(err, "failed to write stderr")
		}
	}

	if result.Source == domain.SourceHitLocally {
		dest := opts.WorkingDir
		if dest == "" {
			dest = "."
		}
		if err := a.contentStore.MaterializeTree(ctx, result.OutputDirectory, dest); err != nil {
			return zerr.Wrap(err, "failed to materialize cached outputs")
		}
	}
	return nil
}
