// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/runcache/internal/core/domain"
)

// Runner defines the capability of executing a process request.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the request and returns its observed result. A non-zero
	// exit code is a result, not an error; Run only errors when the process
	// could not be executed at all.
	Run(ctx context.Context, req *domain.Request) (*domain.ExecutionResult, error)

	// ExtractCompatibleRequest returns the variant this runner would execute,
	// or nil if none is compatible. Used only to name requests in logs.
	ExtractCompatibleRequest(req *domain.Request) *domain.Process
}
