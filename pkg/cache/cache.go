// Package cache stores decoded page dimensions between runs.
//
// Reading an image header is cheap but not free, and comic archives are
// usually reopened many times. A [FileCache] keeps the decoded sizes on disk,
// keyed by [Keyer] so that a modified file is never served a stale size.
package cache

import (
	"context"
	"time"
)

// TTLDimensions is how long decoded page dimensions stay valid.
const TTLDimensions = 30 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data stored under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
