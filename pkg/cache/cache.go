// Package cache provides pluggable storage for rendered identicon images.
//
// The HTTP server caches encoded PNG bytes keyed by digest, width and
// inversion flag so that repeated requests for the same identicon skip
// rasterization and encoding. Backends:
//   - NullCache: no-op, caching disabled
//   - FileCache: local filesystem, suitable for a single instance
//   - RedisCache: Redis, for multi-instance deployments
//   - MongoCache: MongoDB collection with lazy expiry
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with a per-entry TTL.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value, replacing any existing entry for key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
