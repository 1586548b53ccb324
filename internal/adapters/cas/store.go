// Package cas implements the content-addressed blob store holding process
// outputs: stdout/stderr blobs and captured output trees.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/runcache/internal/core/domain"
	"go.trai.ch/runcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentStore = (*Store)(nil)

// Store keeps blobs on disk under root, addressed by sha256 fingerprint and
// sharded by the first fingerprint byte. Directory trees are stored as JSON
// manifests that are themselves blobs.
type Store struct {
	root string
}

// treeFile is one entry of a tree manifest.
type treeFile struct {
	Path       string        `json:"path"`
	Digest     domain.Digest `json:"digest"`
	Executable bool          `json:"executable,omitempty"`
}

// tree is the manifest format for captured output directories.
type tree struct {
	Files []treeFile `json:"files"`
}

// NewStore creates a content store rooted at the given directory.
func NewStore(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create content store directory")
	}
	return &Store{root: root}, nil
}

// WriteBlob stores data and returns its digest. Empty data is not written;
// the empty digest is always considered present.
func (s *Store) WriteBlob(ctx context.Context, data []byte) (domain.Digest, error) {
	if err := ctx.Err(); err != nil {
		return domain.Digest{}, err
	}

	digest := domain.DigestOf(data)
	if digest.IsEmpty() {
		return digest, nil
	}

	path := s.blobPath(digest)
	if _, err := os.Stat(path); err == nil {
		// Content-addressed: an existing blob is byte-identical.
		return digest, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return domain.Digest{}, zerr.Wrap(err, "failed to create blob shard directory")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return domain.Digest{}, zerr.Wrap(err, "failed to create temp blob")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return domain.Digest{}, zerr.Wrap(err, "failed to write blob")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return domain.Digest{}, zerr.Wrap(err, "failed to close temp blob")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return domain.Digest{}, zerr.Wrap(err, "failed to commit blob")
	}
	return digest, nil
}

// ReadBlob returns the bytes of the blob referenced by digest.
func (s *Store) ReadBlob(ctx context.Context, digest domain.Digest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if digest.IsEmpty() {
		return nil, nil
	}

	//nolint:gosec // Path is derived from the store root and a hex fingerprint
	data, err := os.ReadFile(s.blobPath(digest))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrBlobMissing, "digest", digest.Fingerprint.String())
		}
		return nil, zerr.Wrap(err, "failed to read blob")
	}
	if int64(len(data)) != digest.SizeBytes {
		return nil, zerr.With(zerr.New("blob size mismatch"), "digest", digest.Fingerprint.String())
	}
	return data, nil
}

// EnsureLocalHasFile verifies the blob referenced by digest is present with
// the expected size.
func (s *Store) EnsureLocalHasFile(ctx context.Context, digest domain.Digest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if digest.IsEmpty() {
		return nil
	}

	info, err := os.Stat(s.blobPath(digest))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrBlobMissing, "digest", digest.Fingerprint.String())
		}
		return zerr.Wrap(err, "failed to stat blob")
	}
	if info.Size() != digest.SizeBytes {
		return zerr.With(zerr.New("blob size mismatch"), "digest", digest.Fingerprint.String())
	}
	return nil
}

// EnsureLocalHasRecursiveDirectory verifies the tree manifest referenced by
// digest and every file blob it references.
func (s *Store) EnsureLocalHasRecursiveDirectory(ctx context.Context, digest domain.Digest) error {
	if digest.IsEmpty() {
		return nil
	}

	manifest, err := s.readTree(ctx, digest)
	if err != nil {
		return err
	}
	for _, file := range manifest.Files {
		if err := s.EnsureLocalHasFile(ctx, file.Digest); err != nil {
			return zerr.With(err, "path", file.Path)
		}
	}
	return nil
}

// CaptureTree snapshots the given paths relative to root into the store and
// returns the digest of the resulting manifest. Missing paths are skipped:
// a process that declares an output it did not produce still has a result.
func (s *Store) CaptureTree(ctx context.Context, root string, paths []string) (domain.Digest, error) {
	if len(paths) == 0 {
		return domain.EmptyDigest, nil
	}

	var files []treeFile
	for _, rel := range paths {
		abs := filepath.Join(root, rel)
		info, err := os.Stat(abs)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return domain.Digest{}, zerr.Wrap(err, "failed to stat output path")
		}
		if info.IsDir() {
			captured, err := s.captureDir(ctx, root, abs)
			if err != nil {
				return domain.Digest{}, err
			}
			files = append(files, captured...)
			continue
		}
		captured, err := s.captureFile(ctx, root, abs, info)
		if err != nil {
			return domain.Digest{}, err
		}
		files = append(files, captured)
	}

	if len(files) == 0 {
		return domain.EmptyDigest, nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	data, err := json.Marshal(tree{Files: files})
	if err != nil {
		return domain.Digest{}, zerr.Wrap(err, "failed to encode tree manifest")
	}
	return s.WriteBlob(ctx, data)
}

// MaterializeTree writes the tree referenced by digest under dest.
func (s *Store) MaterializeTree(ctx context.Context, digest domain.Digest, dest string) error {
	if digest.IsEmpty() {
		return nil
	}

	manifest, err := s.readTree(ctx, digest)
	if err != nil {
		return err
	}
	for _, file := range manifest.Files {
		data, err := s.ReadBlob(ctx, file.Digest)
		if err != nil {
			return zerr.With(err, "path", file.Path)
		}
		target := filepath.Join(dest, file.Path)
		if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
			return zerr.Wrap(err, "failed to create output directory")
		}
		perm := domain.FilePerm
		if file.Executable {
			perm |= 0o111
		}
		//nolint:gosec // Paths come from a manifest this store wrote
		if err := os.WriteFile(target, data, perm); err != nil {
			return zerr.Wrap(err, "failed to materialize output file")
		}
	}
	return nil
}

func (s *Store) captureDir(ctx context.Context, root, dir string) ([]treeFile, error) {
	var files []treeFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		captured, err := s.captureFile(ctx, root, path, info)
		if err != nil {
			return err
		}
		files = append(files, captured)
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to walk output directory")
	}
	return files, nil
}

func (s *Store) captureFile(ctx context.Context, root, path string, info fs.FileInfo) (treeFile, error) {
	//nolint:gosec // Path is an output the executed process declared
	data, err := os.ReadFile(path)
	if err != nil {
		return treeFile{}, zerr.Wrap(err, "failed to read output file")
	}
	digest, err := s.WriteBlob(ctx, data)
	if err != nil {
		return treeFile{}, err
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return treeFile{}, zerr.Wrap(err, "failed to relativize output path")
	}
	return treeFile{
		Path:       filepath.ToSlash(rel),
		Digest:     digest,
		Executable: info.Mode()&0o111 != 0,
	}, nil
}

func (s *Store) readTree(ctx context.Context, digest domain.Digest) (*tree, error) {
	data, err := s.ReadBlob(ctx, digest)
	if err != nil {
		return nil, err
	}
	var manifest tree
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to decode tree manifest")
	}
	return &manifest, nil
}

func (s *Store) blobPath(digest domain.Digest) string {
	hex := digest.Fingerprint.String()
	return filepath.Join(s.root, "blobs", hex[:2], hex)
}
