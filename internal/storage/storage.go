// Package storage keeps uploaded person files on local disk or in an S3 compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"dealspace-backend/internal/config"
	apperrors "dealspace-backend/internal/errors"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// Storage is an object store addressed by slash separated keys
type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
}

// New builds the storage driver selected by STORAGE_DRIVER
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "local":
		return NewLocalStorage(cfg.StorageLocalRoot, cfg.StoragePublicURL)
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Endpoint:     cfg.S3Endpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	default:
		return nil, apperrors.ErrStorageNotConfigured
	}
}

// cleanKey normalizes a key and rejects keys escaping the store root
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(key))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("storage key is required")
	}
	return cleaned, nil
}
