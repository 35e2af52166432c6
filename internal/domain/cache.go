package domain

import (
	"context"
	"time"
)

// SnapshotCache stores serialized aggregation responses for a short TTL so
// that repeated identical scans within the cache window do not hit the venue.
type SnapshotCache interface {
	// Get returns the cached payload for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// RateLimiter enforces a sliding-window request limit per key.
type RateLimiter interface {
	// Allow reports whether a request for key is permitted under limit
	// requests per window, counting the request when it is.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
