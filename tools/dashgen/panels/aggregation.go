package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AggregationDuration returns a timeseries panel showing the p95 duration of
// uncached aggregations next to the p95 of each downstream call.
func AggregationDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Aggregation Duration (p95)").
		Description("95th percentile of uncached aggregations and their downstream calls").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(lagg_aggregation_duration_seconds_bucket{job="`+Job+`"}[5m])) by (le))`,
			"total", "A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(lagg_directory_query_duration_seconds_bucket{job="`+Job+`"}[5m])) by (le))`,
			"seller directory", "B",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(lagg_index_search_duration_seconds_bucket{job="`+Job+`"}[5m])) by (le))`,
			"search index", "C",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AggregationErrors returns a timeseries panel showing failed aggregations
// per minute by downstream stage.
func AggregationErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Downstream Errors / min").
		Description("Failed aggregations per minute by stage").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(lagg_aggregation_errors_total{job="`+Job+`"}[5m])) by (stage) * 60`,
			"{{stage}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ShortCircuits returns a timeseries panel showing requests answered empty
// because no seller qualified.
func ShortCircuits() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Empty Seller Short-Circuits / min").
		Description("Requests answered without querying the index because no seller qualified").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(lagg_empty_seller_short_circuits_total{job="`+Job+`"}[5m])) * 60`,
			"short-circuits/min", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PageFill returns a bar gauge panel showing how full merged pages are.
func PageFill() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Merged Page Size").
		Description("Distribution of listings per merged page (0-20)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(FullWidth).
		WithTarget(PromQuery(
			`sum(increase(lagg_merged_listings_bucket{job="`+Job+`"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
