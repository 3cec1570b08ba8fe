package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NextWarm returns a stat panel showing time until the next scheduled warm run.
func NextWarm() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Warm Run").
		Description("Time until the next scheduled cache warm run").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`lagg_warmer_next_run_timestamp{job="`+Job+`"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// WarmRuns returns a timeseries panel showing warmed categories per minute
// by outcome.
func WarmRuns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Warm Refreshes / min").
		Description("Category refreshes per minute by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(18).
		WithTarget(PromQuery(
			`sum(rate(lagg_warm_runs_total{job="`+Job+`"}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
