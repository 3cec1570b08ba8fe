package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// DefaultTTL is how long a cached page stays valid after it is written.
const DefaultTTL = 300 * time.Second

// ResultCache stores merged pages as JSON in a Store. It is advisory: store
// failures are logged and reported as misses, never returned to callers.
type ResultCache struct {
	store Store
	ttl   time.Duration
	log   *slog.Logger
}

// Option configures the ResultCache.
type Option func(*ResultCache)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *ResultCache) {
		c.log = l
	}
}

// WithTTL overrides the entry lifetime. Non-positive values keep DefaultTTL
// so entries always expire.
func WithTTL(d time.Duration) Option {
	return func(c *ResultCache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// NewResultCache creates a ResultCache backed by s. A nil store disables
// caching.
func NewResultCache(s Store, opts ...Option) *ResultCache {
	c := &ResultCache{
		store: s,
		ttl:   DefaultTTL,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the entry lifetime.
func (c *ResultCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached listings for key, if present and decodable.
func (c *ResultCache) Get(ctx context.Context, key string) ([]domain.Listing, bool) {
	if c.store == nil {
		return nil, false
	}

	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheError).Inc()
		c.log.Warn("cache lookup failed", "key", key, "error", err)
		return nil, false
	}
	if !found {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, false
	}

	var listings []domain.Listing
	if err := json.Unmarshal([]byte(raw), &listings); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheError).Inc()
		c.log.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	metrics.CacheLookupsTotal.WithLabelValues(metrics.CacheHit).Inc()
	return listings, true
}

// Put writes listings under key for the configured TTL.
func (c *ResultCache) Put(ctx context.Context, key string, listings []domain.Listing) {
	if c.store == nil {
		return
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	data, err := json.Marshal(listings)
	if err != nil {
		metrics.CacheWriteErrorsTotal.Inc()
		c.log.Warn("encoding cache entry failed", "key", key, "error", err)
		return
	}

	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		metrics.CacheWriteErrorsTotal.Inc()
		c.log.Warn("cache write failed", "key", key, "error", err)
	}
}

// Ping reports whether the backing store is reachable. A disabled cache is
// always reachable.
func (c *ResultCache) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Ping(ctx)
}
