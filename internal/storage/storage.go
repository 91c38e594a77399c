package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded attachment files live. Services
// only deal in flat file names; the backend decides the real location.
type Storage interface {
	// Save stores a file under the given name.
	Save(ctx context.Context, name string, reader io.Reader, contentType string) error

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Exists reports whether a file is present.
	Exists(ctx context.Context, name string) (bool, error)

	// URL returns the public URL clients use to fetch the file.
	URL(name string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for s3
	Region    string // for s3
	AccessKey string // for s3
	SecretKey string // for s3
	Endpoint  string // for s3-compatible services
}

// NewStorage creates a storage backend from configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
