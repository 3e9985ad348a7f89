package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseConfig holds the connection settings for Supabase storage
type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
	Bucket         string
}

// SupabaseStore implements blob storage on a Supabase storage bucket
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStore creates a Supabase-backed blob store
func NewSupabaseStore(cfg SupabaseConfig) (*SupabaseStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("supabase bucket is required")
	}

	client := storage_go.NewClient(strings.TrimRight(cfg.URL, "/")+"/storage/v1", cfg.ServiceRoleKey, nil)
	return &SupabaseStore{client: client, bucket: cfg.Bucket}, nil
}

// Download fetches the object at objectPath
func (s *SupabaseStore) Download(ctx context.Context, objectPath string) ([]byte, error) {
	data, err := s.client.DownloadFile(s.bucket, objectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s: %w", objectPath, err)
	}
	return data, nil
}

// Upload stores the object at objectPath, overwriting any existing object
func (s *SupabaseStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) error {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, objectPath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", objectPath, err)
	}
	return nil
}
