package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// PublicPrefix is the URL prefix under which stored audio is served.
const PublicPrefix = "/uploads"

// Store persists uploaded audio blobs and serves them back by name.
type Store interface {
	// Save persists the blob under a generated collision-resistant name
	// preserving the extension of originalName, and returns the public URL
	// clients fetch it from later.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Open returns a reader for a previously stored blob.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewObjectName generates a unique object name keeping the original
// extension, so concurrent uploads never collide.
func NewObjectName(originalName string) string {
	return uuid.NewString() + path.Ext(originalName)
}

// DiskStore stores blobs as files under a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the uploads directory if needed and returns a store
// over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob to disk under a generated name.
func (s *DiskStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	name := NewObjectName(originalName)
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// Open opens a stored blob by name. Path separators in the name are rejected
// so callers cannot escape the uploads directory.
func (s *DiskStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if filepath.Base(name) != name {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.dir, name))
}
