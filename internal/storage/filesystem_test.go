package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFileSystem(t *testing.T) (*FileSystem, string) {
	t.Helper()
	dir := t.TempDir()
	fs := NewFileSystem(dir, zap.NewNop())
	require.NoError(t, fs.Initialize(context.Background()))
	return fs, dir
}

func TestFileSystemRoundTrip(t *testing.T) {
	fs, dir := newTestFileSystem(t)

	data := []byte("a,b,c")
	require.NoError(t, fs.Store(context.Background(), "q1.csv", data))

	got, err := os.ReadFile(filepath.Join(dir, "q1.csv"))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFileSystemCreatesNestedDirectories(t *testing.T) {
	fs, dir := newTestFileSystem(t)

	require.NoError(t, fs.Store(context.Background(), "archive/2024/note.txt", []byte("hello")))

	got, err := os.ReadFile(filepath.Join(dir, "archive", "2024", "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestFileSystemOverwritesExistingKey(t *testing.T) {
	fs, dir := newTestFileSystem(t)

	require.NoError(t, fs.Store(context.Background(), "a.txt", []byte("first")))
	require.NoError(t, fs.Store(context.Background(), "a.txt", []byte("second")))

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestFileSystemInitializeIsIdempotent(t *testing.T) {
	fs, _ := newTestFileSystem(t)

	assert.NoError(t, fs.Initialize(context.Background()))
	assert.NoError(t, fs.Initialize(context.Background()))
}

func TestFileSystemStoreErrorWrapsKey(t *testing.T) {
	fs, dir := newTestFileSystem(t)

	// A directory at the destination path makes the write fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "taken"), 0o755))

	err := fs.Store(context.Background(), "taken", []byte("x"))
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, "taken", werr.Key)
}

func TestFileSystemDescribe(t *testing.T) {
	fs := NewFileSystem("data", zap.NewNop())
	assert.Equal(t, "FileSystem [data]", fs.Describe())
}
