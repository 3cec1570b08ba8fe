package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/listing-aggregator/api/openapi"
	"github.com/donaldgifford/listing-aggregator/internal/aggregator"
	"github.com/donaldgifford/listing-aggregator/internal/api/handlers"
	"github.com/donaldgifford/listing-aggregator/internal/api/middleware"
	"github.com/donaldgifford/listing-aggregator/internal/cache"
	"github.com/donaldgifford/listing-aggregator/internal/config"
	"github.com/donaldgifford/listing-aggregator/internal/search"
	"github.com/donaldgifford/listing-aggregator/internal/store"
	"github.com/donaldgifford/listing-aggregator/internal/telemetry"
)

const apiTitle = "Listing Aggregator API"

// dependencies holds the downstream clients shared by serve and warm.
type dependencies struct {
	store   *store.PostgresStore
	index   *search.ElasticIndex
	cache   cache.Store
	closers []func() error
}

func (d *dependencies) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	return errors.Join(errs...)
}

func openDependencies(ctx context.Context, cfg *config.Config, log *slog.Logger) (*dependencies, error) {
	d := &dependencies{}

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), store.WithPoolSize(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	d.store = pg
	d.closers = append(d.closers, func() error {
		pg.Close()
		return nil
	})

	idx, err := newIndex(cfg.Search)
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	d.index = idx

	cs, closeCache, err := newCacheStore(ctx, cfg.Cache)
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	d.cache = cs
	if closeCache != nil {
		d.closers = append(d.closers, closeCache)
	}

	log.Info("dependencies ready",
		"database", cfg.Database.Host,
		"search_index", cfg.Search.Index,
		"cache_backend", cfg.Cache.Backend,
	)

	return d, nil
}

func newIndex(cfg config.SearchConfig) (*search.ElasticIndex, error) {
	opts := []search.ElasticOption{search.WithTimeout(cfg.Timeout)}
	if cfg.RateLimit.PerSecond > 0 {
		opts = append(opts, search.WithRateLimiter(
			search.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
		))
	}

	idx, err := search.NewElasticIndex(search.ElasticConfig{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating search index client: %w", err)
	}
	return idx, nil
}

// newCacheStore returns a nil Store for the none backend. The returned close
// func is nil when the backend holds no connection.
func newCacheStore(ctx context.Context, cfg config.CacheConfig) (cache.Store, func() error, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		rs, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return rs, rs.Close, nil
	case config.CacheBackendMemory:
		return cache.NewMemoryStore(cfg.Memory.CleanupInterval), nil, nil
	case config.CacheBackendNone:
		return nil, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

func newService(
	cfg *config.Config,
	d *dependencies,
	tel *telemetry.Providers,
	log *slog.Logger,
) *aggregator.Service {
	return aggregator.NewService(d.store, d.index, d.cache,
		aggregator.WithLogger(log),
		aggregator.WithTracerProvider(tel.TracerProvider),
		aggregator.WithMeterProvider(tel.MeterProvider),
		aggregator.WithIndexName(cfg.Search.Index),
		aggregator.WithCacheTTL(cfg.Cache.TTL),
	)
}

// newRouter builds the Echo instance with middleware, health probes, metrics,
// the listing API and Swagger UI.
func newRouter(
	log *slog.Logger,
	svc handlers.ListingsService,
	health *handlers.HealthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	humaCfg.Info.Description = "Paged marketplace listings interleaved fairly across sellers."
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(svc))

	openapi.RegisterRoutes(e, apiTitle)

	return e
}
