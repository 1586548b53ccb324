package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a named, nestable unit of tracked work.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// SetName replaces the span's description, e.g. to mark a cache hit.
	SetName(name string)
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// Description is a human-readable description of the work.
	Description string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithDescription sets the span's initial description.
func WithDescription(desc string) SpanOption {
	return func(c *SpanConfig) {
		c.Description = desc
	}
}
