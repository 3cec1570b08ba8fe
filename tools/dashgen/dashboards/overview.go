// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/listing-aggregator/tools/dashgen/panels"
)

// BuildOverview constructs the Listing Aggregator overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Listing Aggregator Overview").
		Uid("lagg-overview").
		Tags([]string{"lagg", "listing-aggregator"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CacheHitGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Aggregation").
		WithPanel(panels.AggregationDuration()).
		WithPanel(panels.AggregationErrors()).
		WithPanel(panels.ShortCircuits()).
		WithPanel(panels.PageFill()))

	b.WithRow(dashboard.NewRowBuilder("Search Index").
		WithPanel(panels.IndexErrors()).
		WithPanel(panels.RateLimitedCalls()))

	b.WithRow(dashboard.NewRowBuilder("Result Cache").
		WithPanel(panels.CacheLookups()).
		WithPanel(panels.CacheWriteErrors()))

	b.WithRow(dashboard.NewRowBuilder("Warmer").
		WithPanel(panels.NextWarm()).
		WithPanel(panels.WarmRuns()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
