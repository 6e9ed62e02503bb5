package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BlobStore is the narrow contract the media service holds against its
// blob storage collaborator. Implementations back it with a cloud bucket
// in production and the local filesystem in development.
type BlobStore interface {
	// Save writes a blob and returns its storage path.
	Save(ctx context.Context, name string, contentType string, data io.Reader) (string, error)

	// Open returns a reader for a stored blob.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a blob. It reports false without error when the
	// blob was already absent.
	Delete(ctx context.Context, name string) (bool, error)
}

// LocalStore stores blobs under a directory on the local filesystem
type LocalStore struct {
	root string
}

// NewLocalStore creates a filesystem-backed blob store rooted at dir
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStore{root: dir}, nil
}

// Save writes the blob to disk and returns its absolute path
func (s *LocalStore) Save(ctx context.Context, name string, contentType string, data io.Reader) (string, error) {
	path := filepath.Join(s.root, filepath.Base(name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create blob %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}
	return path, nil
}

// Open returns a reader for the stored blob
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, filepath.Base(name)))
}

// Delete removes the blob; a missing blob is not an error
func (s *LocalStore) Delete(ctx context.Context, name string) (bool, error) {
	err := os.Remove(filepath.Join(s.root, filepath.Base(name)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
