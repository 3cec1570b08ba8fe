// Package aggregator answers listing page requests by combining the seller
// directory, the search index, the round-robin merger and the result cache.
package aggregator

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/listing-aggregator/internal/cache"
	"github.com/donaldgifford/listing-aggregator/internal/metrics"
	"github.com/donaldgifford/listing-aggregator/internal/search"
	"github.com/donaldgifford/listing-aggregator/internal/store"
	"github.com/donaldgifford/listing-aggregator/pkg/roundrobin"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

const instrumentationName = "github.com/donaldgifford/listing-aggregator/internal/aggregator"

// Request outcomes recorded on the otel request counter.
const (
	outcomeCacheHit     = "cache_hit"
	outcomeNoSellers    = "no_sellers"
	outcomeMerged       = "merged"
	outcomeInvalidInput = "invalid_input"
	outcomeError        = "error"
)

// Service is the listing aggregation pipeline. It holds no per-request state
// and is safe for concurrent use.
type Service struct {
	sellers   store.SellerDirectory
	index     search.Index
	cache     *cache.ResultCache
	log       *slog.Logger
	tracer    trace.Tracer
	requests  metric.Int64Counter
	indexName string
	cacheTTL  time.Duration

	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithTracerProvider sets the provider stage spans are recorded with.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracerProvider = tp
	}
}

// WithMeterProvider sets the provider the otel request counter is created
// from.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Service) {
		s.meterProvider = mp
	}
}

// WithIndexName overrides the search index queried.
func WithIndexName(name string) Option {
	return func(s *Service) {
		s.indexName = name
	}
}

// WithCacheTTL overrides how long merged pages stay cached. Non-positive
// values are ignored.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cacheTTL = d
		}
	}
}

// NewService creates a Service. A nil cache store disables result caching.
func NewService(
	sellers store.SellerDirectory,
	index search.Index,
	cacheStore cache.Store,
	opts ...Option,
) *Service {
	s := &Service{
		sellers:        sellers,
		index:          index,
		log:            slog.Default(),
		indexName:      search.DefaultIndexName,
		cacheTTL:       cache.DefaultTTL,
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cache = cache.NewResultCache(cacheStore,
		cache.WithLogger(s.log),
		cache.WithTTL(s.cacheTTL),
	)
	s.tracer = s.tracerProvider.Tracer(instrumentationName)

	counter, err := s.meterProvider.Meter(instrumentationName).Int64Counter(
		"lagg.listings.requests",
		metric.WithDescription("Listing page requests by outcome."),
	)
	if err != nil {
		s.log.Warn("creating otel request counter", "error", err)
		counter = metricnoop.Int64Counter{}
	}
	s.requests = counter

	return s
}

// GetListings returns one fairly interleaved page of listings. A cached page
// is returned without touching the directory or the index.
func (s *Service) GetListings(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	return s.run(ctx, "aggregator.GetListings", req, true)
}

// Refresh recomputes the page for req and rewrites its cache entry, skipping
// the cache lookup.
func (s *Service) Refresh(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	return s.run(ctx, "aggregator.Refresh", req, false)
}

func (s *Service) run(
	ctx context.Context,
	spanName string,
	req domain.PageRequest,
	readCache bool,
) (*domain.Page, error) {
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(
		attribute.Int64("listing.category_id", req.CategoryID),
		attribute.Int("listing.page", req.Page),
		attribute.String("listing.sort_by", req.Sort.Field),
		attribute.String("listing.sort_order", string(req.Sort.Order)),
	))
	defer span.End()

	if err := Validate(req); err != nil {
		s.record(ctx, outcomeInvalidInput)
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}

	key := cache.Key(req)

	if readCache {
		if listings, ok := s.lookup(ctx, key); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			s.record(ctx, outcomeCacheHit)
			return newPage(req, listings), nil
		}
		span.SetAttributes(attribute.Bool("cache.hit", false))
	}

	start := time.Now()
	listings, outcome, err := s.aggregate(ctx, req)
	if err != nil {
		s.record(ctx, outcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	s.record(ctx, outcome)

	// Only pages built from index hits are cached.
	if outcome == outcomeMerged {
		s.put(ctx, key, listings)
	}

	return newPage(req, listings), nil
}

func (s *Service) aggregate(ctx context.Context, req domain.PageRequest) ([]domain.Listing, string, error) {
	sellers, err := s.activeSellers(ctx, req)
	if err != nil {
		return nil, "", s.downstream(StageSellerDirectory, req, err)
	}

	if len(sellers) == 0 {
		metrics.EmptySellerShortCircuitsTotal.Inc()
		s.log.Debug("no active sellers", "category_id", req.CategoryID)
		return []domain.Listing{}, outcomeNoSellers, nil
	}

	hits, err := s.searchIndex(ctx, req, sellers)
	if err != nil {
		return nil, "", s.downstream(StageSearchIndex, req, err)
	}

	return s.merge(ctx, hits), outcomeMerged, nil
}

func (s *Service) activeSellers(ctx context.Context, req domain.PageRequest) ([]int64, error) {
	ctx, span := s.tracer.Start(ctx, "aggregator.ActiveSellers")
	defer span.End()

	sellers, err := s.sellers.ActiveSellers(ctx, req.CategoryID, req.Filters)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, StageSellerDirectory)
		return nil, err
	}
	span.SetAttributes(attribute.Int("seller.count", len(sellers)))
	return sellers, nil
}

func (s *Service) searchIndex(
	ctx context.Context,
	req domain.PageRequest,
	sellers []int64,
) ([]domain.Listing, error) {
	ctx, span := s.tracer.Start(ctx, "aggregator.Search", trace.WithAttributes(
		attribute.String("search.index", s.indexName),
		attribute.Int("search.size", domain.PageSize),
		attribute.Int("search.from", req.Offset()),
	))
	defer span.End()

	q := search.BuildQuery(req.CategoryID, sellers, req.Filters, req.Sort)
	hits, err := s.index.Search(ctx, s.indexName, q, domain.PageSize, req.Offset())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, StageSearchIndex)
		return nil, err
	}
	span.SetAttributes(attribute.Int("search.hits", len(hits)))
	return hits, nil
}

func (s *Service) merge(ctx context.Context, hits []domain.Listing) []domain.Listing {
	_, span := s.tracer.Start(ctx, "aggregator.Merge")
	defer span.End()

	merged := roundrobin.Merge(hits, domain.PageSize)
	metrics.MergedListings.Observe(float64(len(merged)))
	span.SetAttributes(attribute.Int("merge.listings", len(merged)))
	return merged
}

func (s *Service) lookup(ctx context.Context, key string) ([]domain.Listing, bool) {
	ctx, span := s.tracer.Start(ctx, "aggregator.CacheGet")
	defer span.End()

	listings, ok := s.cache.Get(ctx, key)
	span.SetAttributes(attribute.Bool("cache.hit", ok))
	return listings, ok
}

func (s *Service) put(ctx context.Context, key string, listings []domain.Listing) {
	ctx, span := s.tracer.Start(ctx, "aggregator.CachePut")
	defer span.End()

	s.cache.Put(ctx, key, listings)
}

// downstream wraps a collaborator failure. The underlying error is logged
// here; callers only see the stage.
func (s *Service) downstream(stage string, req domain.PageRequest, err error) error {
	metrics.AggregationErrorsTotal.WithLabelValues(stage).Inc()
	s.log.Error("aggregation failed",
		"stage", stage,
		"category_id", req.CategoryID,
		"page", req.Page,
		"error", err,
	)
	return &DownstreamError{Stage: stage, Err: err}
}

func (s *Service) record(ctx context.Context, outcome string) {
	s.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// CacheReachable reports whether the cache backend answers.
func (s *Service) CacheReachable(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

func newPage(req domain.PageRequest, listings []domain.Listing) *domain.Page {
	if listings == nil {
		listings = []domain.Listing{}
	}
	return &domain.Page{
		Listings: listings,
		Page:     req.Page,
		PageSize: domain.PageSize,
	}
}
