package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemStore implements blob storage on the local filesystem. Object
// paths map directly to files under the base directory. Used for local
// development and tests.
type FilesystemStore struct {
	basePath string
}

// NewFilesystemStore creates a filesystem-backed blob store rooted at basePath
func NewFilesystemStore(basePath string) (*FilesystemStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FilesystemStore{basePath: basePath}, nil
}

// Download reads the object at objectPath
func (s *FilesystemStore) Download(ctx context.Context, objectPath string) ([]byte, error) {
	data, err := os.ReadFile(s.fullPath(objectPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectPath, err)
	}
	return data, nil
}

// Upload writes the object at objectPath, overwriting any existing file.
// The content type is not stored; the filesystem backend has nowhere to
// keep it.
func (s *FilesystemStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) error {
	fullPath := s.fullPath(objectPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", objectPath, err)
	}
	return nil
}

func (s *FilesystemStore) fullPath(objectPath string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(objectPath))
}
