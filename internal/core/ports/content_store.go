package ports

import (
	"context"

	"go.trai.ch/runcache/internal/core/domain"
)

// ContentStore is the content-addressed blob store holding process outputs.
//
//go:generate go run go.uber.org/mock/mockgen -source=content_store.go -destination=mocks/mock_content_store.go -package=mocks
type ContentStore interface {
	// EnsureLocalHasFile verifies the blob referenced by digest is present.
	EnsureLocalHasFile(ctx context.Context, digest domain.Digest) error

	// EnsureLocalHasRecursiveDirectory verifies the tree manifest referenced
	// by digest and every blob it references are present.
	EnsureLocalHasRecursiveDirectory(ctx context.Context, digest domain.Digest) error

	// WriteBlob stores data and returns its digest.
	WriteBlob(ctx context.Context, data []byte) (domain.Digest, error)

	// ReadBlob returns the bytes of the blob referenced by digest.
	ReadBlob(ctx context.Context, digest domain.Digest) ([]byte, error)

	// CaptureTree snapshots the given paths (relative to root) into the
	// store and returns the digest of the resulting tree manifest.
	CaptureTree(ctx context.Context, root string, paths []string) (domain.Digest, error)

	// MaterializeTree writes the tree referenced by digest under dest.
	MaterializeTree(ctx context.Context, digest domain.Digest, dest string) error
}
