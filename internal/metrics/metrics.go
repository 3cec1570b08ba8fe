// Package metrics defines Prometheus metrics for listing-aggregator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lagg"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Aggregation metrics.
var (
	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of uncached listing aggregations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	AggregationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregation_errors_total",
		Help:      "Total number of failed aggregations by downstream stage.",
	}, []string{"stage"})

	EmptySellerShortCircuitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_seller_short_circuits_total",
		Help:      "Total number of requests answered empty because no seller qualified.",
	})

	MergedListings = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "merged_listings",
		Help:      "Number of listings in each merged page.",
		Buckets:   prometheus.LinearBuckets(0, 4, 6), // 0, 4, ..., 20
	})
)

// Seller directory metrics.
var (
	DirectoryQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "directory_query_duration_seconds",
		Help:      "Duration of active seller lookups in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Search index metrics.
var (
	IndexSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "index_search_duration_seconds",
		Help:      "Duration of search index queries in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	IndexSearchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "index_search_errors_total",
		Help:      "Total number of failed search index queries.",
	})

	IndexRateLimitWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "index_rate_limit_waits_total",
		Help:      "Total number of search calls that passed through the rate limiter.",
	})
)

// Cache metrics.
var (
	CacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of result cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	CacheWriteErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_write_errors_total",
		Help:      "Total number of result cache writes that failed.",
	})
)

// Warmer metrics.
var (
	WarmRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "warm_runs_total",
		Help:      "Total number of cache warm requests by outcome.",
	}, []string{"outcome"})

	WarmerNextRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "warmer_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled cache warm run.",
	})
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
