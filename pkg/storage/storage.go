package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"sekor-bkc/pkg/config"
)

var ErrNotFound = errors.New("object not found")

// Storage stores media bytes under a key.
type Storage interface {
	// Write stores content from r under key. size is -1 when unknown.
	Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Read returns the content for key. The caller closes the reader.
	Read(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public address of key.
	URL(key string) string
}

// New builds the backend selected by STORAGE_DRIVER.
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalStorage(LocalConfig{
			BasePath:  cfg.UploadDir,
			PublicURL: cfg.PublicBaseURL + "/uploads",
		})
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
