// Package cache implements the cache-aside result cache in front of the
// listing aggregation pipeline, with Redis and in-process backends.
package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-key expiry.
type Store interface {
	// Get returns the value for key. A missing or expired key returns
	// found=false and a nil error.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
