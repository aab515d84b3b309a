// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the interface for writing objects and signing download URLs.
type Storage interface {
	// Upload streams data to the store under the given key. size must be the
	// exact byte count; acl is the canned ACL applied to the object.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType, acl string) error
	// SignedURL produces a time-limited GET URL for an otherwise private object.
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
