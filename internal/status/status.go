// Package status tracks per-file upload state in a TTL-backed key-value store.
//
// The protocol, keyed by sanitized filename: a pending upload stores the
// file's metadata JSON; a failed upload overwrites it with the literal
// "error"; a successful upload deletes the key. Absence of a key therefore
// means the upload finished (or never started).
package status

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtmtec/cloud-uploader/internal/keyvalue"
)

// EntryTTL bounds how long a pending or failed marker survives without
// being settled.
const EntryTTL = 10 * 24 * time.Hour

const failedMarker = "error"

// Store wraps the key-value store with the upload-status protocol.
type Store struct {
	kv keyvalue.Store
}

// NewStore creates a Store over the given key-value backend.
func NewStore(kv keyvalue.Store) *Store {
	return &Store{kv: kv}
}

// MarkPending records that filename has started uploading, keeping its
// metadata as the entry payload.
func (s *Store) MarkPending(ctx context.Context, filename string, info any) error {
	b, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode status payload: %w", err)
	}
	return s.kv.SetEx(ctx, filename, string(b), EntryTTL)
}

// MarkFailed records that the upload of filename failed.
func (s *Store) MarkFailed(ctx context.Context, filename string) error {
	return s.kv.SetEx(ctx, filename, failedMarker, EntryTTL)
}

// Clear removes the entry for filename, marking the upload finished.
func (s *Store) Clear(ctx context.Context, filename string) error {
	return s.kv.Del(ctx, filename)
}

// Result is the answer to a status query.
type Result struct {
	Finished bool
	Failed   bool
}

// Query reports the upload state of filename: absent means finished, the
// failure marker means failed, anything else means still pending.
func (s *Store) Query(ctx context.Context, filename string) (Result, error) {
	v, ok, err := s.kv.Get(ctx, filename)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Finished: true}, nil
	}
	if v == failedMarker {
		return Result{Failed: true}, nil
	}
	return Result{}, nil
}
