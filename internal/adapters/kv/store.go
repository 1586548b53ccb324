// Package kv implements the durable execution store as a file-per-key
// layout sharded by fingerprint prefix.
package kv

import (
	"context"
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ExecutionStore = (*Store)(nil)

// frameHeaderSize is the size of the xxhash checksum prefixed to each entry.
const frameHeaderSize = 8

// Store persists cache entries under root, one file per fingerprint.
// Writes go through a temp file and rename, so a key update is atomic.
// There is no deletion operation.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create execution store directory")
	}
	return &Store{root: root}, nil
}

// LoadBytesWith fetches the entry for key and passes its payload to decode.
// Absence is a normal outcome, returned as (false, nil).
func (s *Store) LoadBytesWith(ctx context.Context, key domain.Fingerprint, decode func([]byte) error) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	//nolint:gosec // Path is derived from the store root and a hex fingerprint
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, "failed to read cache entry")
	}

	if len(data) < frameHeaderSize {
		return false, zerr.With(domain.ErrChecksumMismatch, "length", len(data))
	}
	stored := binary.LittleEndian.Uint64(data[:frameHeaderSize])
	payload := data[frameHeaderSize:]
	if stored != xxhash.Sum64(payload) {
		return false, zerr.With(domain.ErrChecksumMismatch, "key", key.String())
	}

	if err := decode(payload); err != nil {
		return false, err
	}
	return true, nil
}

// StoreBytes persists data under key. With overwrite false an existing
// entry is kept.
func (s *Store) StoreBytes(ctx context.Context, key domain.Fingerprint, data []byte, overwrite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(key)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create shard directory")
	}

	framed := make([]byte, frameHeaderSize+len(data))
	binary.LittleEndian.PutUint64(framed[:frameHeaderSize], xxhash.Sum64(data))
	copy(framed[frameHeaderSize:], data)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	if _, err := tmp.Write(framed); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to commit cache entry")
	}
	return nil
}

func (s *Store) path(key domain.Fingerprint) string {
	hex := key.String()
	return filepath.Join(s.root, hex[:2], hex+".bin")
}
