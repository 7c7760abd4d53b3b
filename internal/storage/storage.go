// Package storage defines the pluggable persistence target for uploaded files.
// Both backends treat keys as opaque path-like strings that may contain "/"
// segments; swapping backends requires no handler changes.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Backend types accepted by New.
const (
	TypeFileSystem = "filesystem"
	TypeMinio      = "minio"
)

// Provider is the interface for storing uploaded payloads.
type Provider interface {
	// Initialize prepares the backend (directory tree, bucket). It is
	// idempotent and must complete once before the service accepts traffic.
	Initialize(ctx context.Context) error
	// Store writes data under key, overwriting any existing content.
	// Intermediate structure implied by "/" segments is created as needed.
	Store(ctx context.Context, key string, data []byte) error
	// Describe returns a human-readable backend identity for health reporting.
	Describe() string
}

// InitError reports that a backend could not be prepared. Fatal at startup.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return "storage initialization failed: " + e.Err.Error() }
func (e *InitError) Unwrap() error { return e.Err }

// WriteError reports a failed write of a single key.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("store %q: %v", e.Key, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Config holds the resolved backend settings consumed by New.
type Config struct {
	Type      string
	Directory string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// New selects and constructs the provider for cfg. Unknown types fall back to
// the filesystem backend. The returned provider is not yet initialized.
func New(cfg Config, logger *zap.Logger) (Provider, error) {
	switch cfg.Type {
	case TypeFileSystem, "":
		return NewFileSystem(cfg.Directory, logger), nil
	case TypeMinio:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("storage: STORAGE_ENDPOINT is required when STORAGE_TYPE=minio")
		}
		if cfg.AccessKey == "" {
			return nil, fmt.Errorf("storage: STORAGE_ACCESS_KEY is required when STORAGE_TYPE=minio")
		}
		if cfg.SecretKey == "" {
			return nil, fmt.Errorf("storage: STORAGE_SECRET_KEY is required when STORAGE_TYPE=minio")
		}
		return NewMinio(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.Bucket, cfg.UseSSL, logger)
	default:
		logger.Warn("unknown storage type, falling back to filesystem", zap.String("type", cfg.Type))
		return NewFileSystem(cfg.Directory, logger), nil
	}
}
