package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// Pointing it at s3.amazonaws.com talks to AWS S3 directly; a local MinIO
// endpoint works without code changes.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates an S3 client for the given endpoint and bucket.
// The bucket is expected to exist already; this service only relays into it.
func NewMinioStorage(endpoint, accessKey, secretKey, region, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// Upload streams reader to the bucket under key, applying the canned ACL.
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType, acl string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if acl != "" {
		opts.UserMetadata = map[string]string{"x-amz-acl": acl}
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, opts)
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// SignedURL returns a presigned GET URL for key, valid for the given duration.
func (s *MinioStorage) SignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expires, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", key, err)
	}
	return u.String(), nil
}
