package documents

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"pm-ajay/monitoring-backend/pkg/apperr"
)

// DiskStore writes uploads to a local directory under generated names.
type DiskStore struct {
	dir     string
	maxSize int64
}

// NewDiskStore creates the uploads directory if needed.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

// Save streams the upload to disk. The stored name keeps only the original
// extension; the rest is a generated id so names never collide.
func (s *DiskStore) Save(originalName string, r io.Reader) (storedName string, size int64, err error) {
	storedName = uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(s.dir, storedName)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, apperr.Internal("failed to create upload file", err)
	}
	defer f.Close()

	// One extra byte past the cap distinguishes "exactly at the limit"
	// from "over it".
	size, err = io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(path)
		return "", 0, apperr.Internal("failed to write upload", err)
	}
	if size > s.maxSize {
		os.Remove(path)
		return "", 0, apperr.Upload(fmt.Sprintf("file exceeds the %d byte limit", s.maxSize))
	}
	return storedName, size, nil
}

func (s *DiskStore) Remove(storedName string) error {
	err := os.Remove(filepath.Join(s.dir, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the uploads directory, for static file serving.
func (s *DiskStore) Dir() string {
	return s.dir
}
