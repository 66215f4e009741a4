// Package storage implements the filesystem-backed image store. Uploaded
// event images are written under a single root directory using generated
// filenames; the stored name is what event rows reference in image_path.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyFile is returned when a store is attempted with no content.
var ErrEmptyFile = errors.New("cannot store empty file")

// ErrInvalidName is returned when a filename would resolve outside the
// storage root.
var ErrInvalidName = errors.New("invalid storage filename")

// ErrFileNotFound is returned when a read references a name that was never
// stored (or whose file has gone missing). It is distinct from generic
// storage failures so handlers can answer 404 instead of 500.
var ErrFileNotFound = errors.New("stored file not found")

// ImageStore persists images under a root directory.
type ImageStore struct {
	root string
}

func New(root string) *ImageStore { return &ImageStore{root: root} }

// Init creates the storage root if it does not exist. Safe to call on
// every startup.
func (s *ImageStore) Init() error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("init storage root %s: %w", s.root, err)
	}
	return nil
}

// resolve validates a name and returns its absolute path inside the root.
// Names containing separators or dot-dot segments would escape the root
// and are rejected.
func (s *ImageStore) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.root, name), nil
}

// Store writes size bytes from src under the given name and returns the
// name. Empty content and names escaping the root are rejected.
func (s *ImageStore) Store(name string, src io.Reader, size int64) (string, error) {
	if size <= 0 {
		return "", ErrEmptyFile
	}
	dst, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst) // don't leave partial writes behind
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// Open returns a reader over a stored file. A name that was never stored
// yields ErrFileNotFound.
func (s *ImageStore) Open(name string) (io.ReadCloser, error) {
	p, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// Path returns the on-disk path of a stored file after verifying it is
// readable, for handlers that serve files directly.
func (s *ImageStore) Path(name string) (string, error) {
	p, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("stat %s: %w", name, err)
	}
	return p, nil
}

// Exists reports whether a stored name currently resolves to a readable
// file. Used on the read path, where a missing image degrades the response
// instead of failing it.
func (s *ImageStore) Exists(name string) bool {
	_, err := s.Path(name)
	return err == nil
}
