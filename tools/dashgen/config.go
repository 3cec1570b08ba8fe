package main

import "errors"

// KnownMetrics is the set of metric names exported by listing-aggregator
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"lagg_http_request_duration_seconds": true,
	"lagg_http_requests_total":           true,

	// Health metrics.
	"lagg_healthz_up": true,
	"lagg_readyz_up":  true,

	// Aggregation metrics.
	"lagg_aggregation_duration_seconds":      true,
	"lagg_aggregation_errors_total":          true,
	"lagg_empty_seller_short_circuits_total": true,
	"lagg_merged_listings":                   true,

	// Seller directory and search index metrics.
	"lagg_directory_query_duration_seconds": true,
	"lagg_index_search_duration_seconds":    true,
	"lagg_index_search_errors_total":        true,
	"lagg_index_rate_limit_waits_total":     true,

	// Cache metrics.
	"lagg_cache_lookups_total":      true,
	"lagg_cache_write_errors_total": true,

	// Warmer metrics.
	"lagg_warm_runs_total":           true,
	"lagg_warmer_next_run_timestamp": true,

	// Recording rules.
	"lagg:http_requests:rate5m":      true,
	"lagg:http_errors:rate5m":        true,
	"lagg:aggregation_errors:rate5m": true,
	"lagg:cache_hit_ratio:rate5m":    true,
	"lagg:index_errors:rate5m":       true,
	"lagg:warm_failures:rate5m":      true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
