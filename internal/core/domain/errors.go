package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingActionResult is returned when a cache entry decodes but its
	// action result payload is absent.
	ErrMissingActionResult = zerr.New("action result missing from cache entry")

	// ErrChecksumMismatch is returned when a stored entry fails its
	// integrity check.
	ErrChecksumMismatch = zerr.New("cache entry checksum mismatch")

	// ErrBlobMissing is returned when a referenced blob is not present in
	// the content store.
	ErrBlobMissing = zerr.New("blob not present in content store")

	// ErrNoCompatibleVariant is returned when a request has no variant
	// runnable on the current platform.
	ErrNoCompatibleVariant = zerr.New("no compatible request variant for platform")
)
