// Package keyvalue defines the key-value store capability the service uses
// as a TTL-backed status cache, with Redis and in-memory implementations.
// Swap implementations by changing the concrete type injected at startup.
package keyvalue

import (
	"context"
	"time"
)

// Store is the interface for a key-value store with per-key expiry.
type Store interface {
	// SetEx stores value under key with a time-to-live.
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns the value for key and whether the key exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Del removes key. Deleting an absent key is not an error.
	Del(ctx context.Context, key string) error
	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
}
