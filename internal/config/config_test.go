package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL",
		"STORAGE_TYPE", "STORAGE_DIRECTORY",
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY",
		"STORAGE_BUCKET", "STORAGE_USE_SSL",
		"AUTH_ENABLED", "AUTH_ACCESS_TOKEN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "filesystem", cfg.StorageType)
	assert.Equal(t, "files", cfg.StorageDirectory)
	assert.Equal(t, "data-lake", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
	assert.True(t, cfg.AuthEnabled)
	assert.Empty(t, cfg.AuthAccessToken)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_TYPE", "minio")
	t.Setenv("STORAGE_ENDPOINT", "minio.internal:9000")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("AUTH_ENABLED", "false")
	t.Setenv("AUTH_ACCESS_TOKEN", "secret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "minio", cfg.StorageType)
	assert.Equal(t, "minio.internal:9000", cfg.StorageEndpoint)
	assert.True(t, cfg.StorageUseSSL)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, "secret", cfg.AuthAccessToken)
}
