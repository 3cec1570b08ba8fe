package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheLookups returns a timeseries panel showing cache lookups per second
// by result.
func CacheLookups() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cache Lookups").
		Description("Result cache lookups per second by result (hit, miss, error)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(lagg_cache_lookups_total{job="`+Job+`"}[5m])) by (result)`,
			"{{result}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CacheWriteErrors returns a stat panel showing failed cache writes in the
// last hour.
func CacheWriteErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Cache Write Errors (1h)").
		Description("Result cache writes that failed in the last hour").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(lagg_cache_write_errors_total{job="`+Job+`"}[1h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
