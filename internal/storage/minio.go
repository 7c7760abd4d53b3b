package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Minio stores payloads as objects in a single bucket on any S3-compatible
// endpoint (MinIO, ArvanCloud, AWS S3). Switching providers only requires
// changing the endpoint and credentials.
type Minio struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinio creates the S3 client. The bucket is verified on Initialize, not here.
func NewMinio(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *zap.Logger) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Minio{client: client, bucket: bucket, logger: logger}, nil
}

// Initialize verifies the bucket exists, creating it when absent.
func (m *Minio) Initialize(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return &InitError{Err: fmt.Errorf("check bucket %q: %w", m.bucket, err)}
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return &InitError{Err: fmt.Errorf("create bucket %q: %w", m.bucket, err)}
		}
		m.logger.Info("created bucket", zap.String("bucket", m.bucket))
	}
	m.logger.Info("minio storage initialized", zap.String("bucket", m.bucket))
	return nil
}

// Store uploads data under key with content type application/octet-stream.
func (m *Minio) Store(ctx context.Context, key string, data []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	m.logger.Info("stored object",
		zap.String("bucket", m.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)))
	return nil
}

// Describe returns the backend identity used in the health report.
func (m *Minio) Describe() string {
	return "MinIO [bucket: " + m.bucket + "]"
}
