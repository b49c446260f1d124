package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/stepsyncdev/stepsync/pkg/config"
)

// MediaStore wraps MinIO for source videos and rendered artifacts.
// Objects live under media/<project>/ and outputs/<project>/.
type MediaStore struct {
	client *minio.Client
	bucket string
}

// NewMediaStore creates a MinIO-backed media store and ensures the bucket
// exists.
func NewMediaStore(cfg *config.StorageConfig) (*MediaStore, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MediaStore{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	if err := store.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return store, nil
}

func (m *MediaStore) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// MediaObjectName builds the object key for a project's source video.
func MediaObjectName(projectID, filename string) string {
	return fmt.Sprintf("media/%s/%s", projectID, filename)
}

// ArtifactObjectName builds the object key for a rendered artifact.
func ArtifactObjectName(projectID, filename string) string {
	return fmt.Sprintf("outputs/%s/%s", projectID, filename)
}

// Upload streams an object into the bucket. size may be -1 when unknown.
func (m *MediaStore) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Open returns a reader over a stored object. The caller owns the reader.
func (m *MediaStore) Open(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return obj, nil
}

// PresignedURL returns a time-limited download URL for an object.
func (m *MediaStore) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// Remove deletes an object. Missing objects are not an error.
func (m *MediaStore) Remove(ctx context.Context, objectName string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object: %w", err)
	}
	return nil
}
