package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// IndexErrors returns a timeseries panel showing failed search index queries
// per minute.
func IndexErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Index Errors / min").
		Description("Search index queries that failed or timed out").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`lagg:index_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitedCalls returns a timeseries panel showing search calls admitted
// by the rate limiter.
func RateLimitedCalls() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Index Calls Admitted").
		Description("Search index calls per second admitted by the rate limiter").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(lagg_index_rate_limit_waits_total{job="`+Job+`"}[5m]))`,
			"calls/s", "A",
		)).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
