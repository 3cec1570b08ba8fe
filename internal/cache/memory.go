package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore implements Store in process using go-cache. Entries are not
// shared between replicas.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-process store that purges expired entries
// every cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(DefaultTTL, cleanupInterval),
	}
}

// Get implements Store.Get.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	v, found := s.cache.Get(key)
	if !found {
		return "", false, nil
	}
	str, ok := v.(string)
	if !ok {
		return "", false, nil
	}
	return str, true, nil
}

// Set implements Store.Set.
func (s *MemoryStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.cache.Set(key, value, ttl)
	return nil
}

// Ping implements Store.Ping.
func (*MemoryStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// purged.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
