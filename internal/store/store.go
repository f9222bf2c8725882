// Package store is the persistence collaborator for the config
// document. It moves raw bytes to and from a filesystem; it knows
// nothing about the document's structure.
package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// MaxFileSize is the maximum document size we'll read (1MB).
// This prevents memory exhaustion from maliciously large files.
const MaxFileSize = 1024 * 1024

// ErrFileTooLarge indicates a document exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// Store reads and writes config documents on a filesystem. The
// filesystem is injected so tests run against an in-memory one.
type Store struct {
	fs afero.Fs
}

// New creates a Store over the given filesystem.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS creates a Store over the real filesystem.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Exists reports whether a document exists at path.
func (s *Store) Exists(path string) (bool, error) {
	return afero.Exists(s.fs, path)
}

// Read returns the bytes at path, refusing files over MaxFileSize.
func (s *Store) Read(path string) ([]byte, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast when the size is already known to be too large
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	r := io.LimitReader(f, MaxFileSize+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// Write writes data to path atomically using a temp file + rename in
// the same directory, so interrupted writes leave the original file
// intact. Parent directories are created as needed.
func (s *Store) Write(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	tmp, err := afero.TempFile(s.fs, dir, ".runr-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only remove if rename failed (file still exists)
		if ok, _ := afero.Exists(s.fs, tmpName); ok {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := s.fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}

	if err := s.fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}
