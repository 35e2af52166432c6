package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/petro438/PM-Intel/internal/domain"
)

// SnapshotCache implements domain.SnapshotCache with plain string keys
// holding the serialized aggregation response.
//
// Key schema:
//
//	scan:{status}:{min_liquidity} - serialized response payload
type SnapshotCache struct {
	rdb *redis.Client
}

// NewSnapshotCache creates a SnapshotCache backed by the given Client.
func NewSnapshotCache(c *Client) *SnapshotCache {
	return &SnapshotCache{rdb: c.Underlying()}
}

func snapshotKey(key string) string { return "scan:" + key }

// Get returns the cached payload for key, or domain.ErrNotFound.
func (sc *SnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := sc.rdb.Get(ctx, snapshotKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis: get snapshot %s: %w", key, err)
	}
	return data, nil
}

// Set stores payload under key with the given TTL.
func (sc *SnapshotCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := sc.rdb.Set(ctx, snapshotKey(key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set snapshot %s: %w", key, err)
	}
	return nil
}
