package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

const defaultTimeout = 5 * time.Second

// ElasticConfig holds the cluster connection settings.
type ElasticConfig struct {
	Addresses []string
	Username  string
	Password  string
}

// ElasticIndex implements Index using the Elasticsearch _search API.
type ElasticIndex struct {
	es          *elasticsearch.Client
	timeout     time.Duration
	rateLimiter *RateLimiter
	transport   http.RoundTripper
}

// ElasticOption configures the ElasticIndex.
type ElasticOption func(*ElasticIndex)

// WithTimeout bounds each search call.
func WithTimeout(d time.Duration) ElasticOption {
	return func(c *ElasticIndex) {
		c.timeout = d
	}
}

// WithRateLimiter injects a rate limiter. When set, every Search call goes
// through Wait first.
func WithRateLimiter(r *RateLimiter) ElasticOption {
	return func(c *ElasticIndex) {
		c.rateLimiter = r
	}
}

// WithTransport overrides the HTTP transport used by the client.
func WithTransport(rt http.RoundTripper) ElasticOption {
	return func(c *ElasticIndex) {
		c.transport = rt
	}
}

// NewElasticIndex creates a new search index client.
func NewElasticIndex(cfg ElasticConfig, opts ...ElasticOption) (*ElasticIndex, error) {
	c := &ElasticIndex{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(c)
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: c.transport,
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}
	c.es = es

	return c, nil
}

type searchAPIResponse struct {
	Hits struct {
		Hits []struct {
			Source domain.Listing `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search implements Index.Search. Failures are reported with the HTTP status
// only; the query body never appears in errors.
func (c *ElasticIndex) Search(
	ctx context.Context,
	index string,
	q *Query,
	size, from int,
) ([]domain.Listing, error) {
	start := time.Now()
	defer func() {
		metrics.IndexSearchDuration.Observe(time.Since(start).Seconds())
	}()

	hits, err := c.search(ctx, index, q, size, from)
	if err != nil {
		metrics.IndexSearchErrorsTotal.Inc()
		return nil, err
	}
	return hits, nil
}

func (c *ElasticIndex) search(
	ctx context.Context,
	index string,
	q *Query,
	size, from int,
) ([]domain.Listing, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(body)),
		c.es.Search.WithSize(size),
		c.es.Search.WithFrom(from),
	)
	if err != nil {
		return nil, fmt.Errorf("executing search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search index returned status %d", res.StatusCode)
	}

	var parsed searchAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	listings := make([]domain.Listing, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		listings = append(listings, h.Source)
	}

	return listings, nil
}

// Ping implements Index.Ping.
func (c *ElasticIndex) Ping(ctx context.Context) error {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("pinging search index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("search index ping returned status %d", res.StatusCode)
	}
	return nil
}
