package ports

import (
	"context"

	"go.trai.ch/runcache/internal/core/domain"
)

// ExecutionStore is the durable key-value store holding cache entries keyed
// by request fingerprint. Writes to a single key are atomic; the store has
// no deletion operation.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ExecutionStore interface {
	// LoadBytesWith fetches the bytes stored under key and passes them to
	// decode. It returns false with a nil error when no entry exists.
	// A decode failure is returned as an error.
	LoadBytesWith(ctx context.Context, key domain.Fingerprint, decode func([]byte) error) (bool, error)

	// StoreBytes persists data under key. When overwrite is false an
	// existing entry is left in place.
	StoreBytes(ctx context.Context, key domain.Fingerprint, data []byte, overwrite bool) error
}
