// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Storage backend selection: "filesystem" (default) or "minio"
	StorageType string

	// Filesystem backend
	StorageDirectory string

	// Object storage (S3-compatible: MinIO locally, any S3 endpoint in production)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool

	// Upload authentication
	AuthEnabled     bool
	AuthAccessToken string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		StorageType:      getEnv("STORAGE_TYPE", "filesystem"),
		StorageDirectory: getEnv("STORAGE_DIRECTORY", "files"),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", "data-lake"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",

		AuthEnabled:     getEnv("AUTH_ENABLED", "true") == "true",
		AuthAccessToken: getEnv("AUTH_ACCESS_TOKEN", ""),
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
