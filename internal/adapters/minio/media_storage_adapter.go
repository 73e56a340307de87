package minio_adapter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

// MinioConfig holds the connection parameters for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// PublicBaseURL is the prefix under which the bucket is served to
	// browsers, e.g. "https://media.example.com/listings". When empty the
	// endpoint and bucket name are used directly.
	PublicBaseURL string
}

// MinioMediaStorage stores gallery images and floor plans in a single
// public-read bucket.
type MinioMediaStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewMinioMediaStorage(cfg MinioConfig) (*MinioMediaStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket cannot be empty")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &MinioMediaStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *MinioMediaStorage) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "MinioMediaStorage",
		"method":    "Upload",
		"path":      path,
	})

	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		storageLogger.Error("Failed to upload object", err, nil)
		return "", fmt.Errorf("failed to upload object %q: %w", path, err)
	}

	url := s.baseURL + "/" + path
	storageLogger.Debug("Object uploaded", port.Fields{"url": url})
	return url, nil
}

func (s *MinioMediaStorage) Remove(ctx context.Context, path string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	storageLogger := logger.WithFields(port.Fields{
		"component": "MinioMediaStorage",
		"method":    "Remove",
		"path":      path,
	})

	if err := s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{}); err != nil {
		storageLogger.Error("Failed to remove object", err, nil)
		return fmt.Errorf("failed to remove object %q: %w", path, err)
	}

	storageLogger.Debug("Object removed", nil)
	return nil
}

// PathFromURL strips the public base URL to recover the object path. URLs
// produced by a different store are rejected.
func (s *MinioMediaStorage) PathFromURL(url string) (string, error) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q does not belong to this store", url)
	}
	path := strings.TrimPrefix(url, prefix)
	if path == "" {
		return "", fmt.Errorf("url %q has an empty object path", url)
	}
	return path, nil
}
