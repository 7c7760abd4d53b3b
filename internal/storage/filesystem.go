package storage

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSystem stores payloads as files under a root directory.
type FileSystem struct {
	root   string
	logger *zap.Logger
}

// NewFileSystem creates a filesystem provider rooted at root.
func NewFileSystem(root string, logger *zap.Logger) *FileSystem {
	return &FileSystem{root: root, logger: logger}
}

// Initialize creates the root directory if it does not exist.
func (f *FileSystem) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(f.root, 0o755); err != nil {
		return &InitError{Err: err}
	}
	f.logger.Info("filesystem storage initialized", zap.String("directory", f.root))
	return nil
}

// Store writes data to <root>/<key>, creating the parent directories implied
// by "/" segments in the key.
func (f *FileSystem) Store(ctx context.Context, key string, data []byte) error {
	path := filepath.Join(f.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &WriteError{Key: key, Err: err}
	}
	f.logger.Info("stored file",
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return nil
}

// Describe returns the backend identity used in the health report.
func (f *FileSystem) Describe() string {
	return "FileSystem [" + f.root + "]"
}
