package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lagg-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lagg-recording",
					Rules: []Rule{
						{
							Record: "lagg:http_requests:rate5m",
							Expr:   `sum(rate(lagg_http_requests_total[5m]))`,
						},
						{
							Record: "lagg:http_errors:rate5m",
							Expr:   `sum(rate(lagg_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "lagg:aggregation_errors:rate5m",
							Expr:   `sum(rate(lagg_aggregation_errors_total[5m])) by (stage)`,
						},
						{
							Record: "lagg:cache_hit_ratio:rate5m",
							Expr: `sum(rate(lagg_cache_lookups_total{result="hit"}[5m])) / ` +
								`sum(rate(lagg_cache_lookups_total[5m]))`,
						},
						{
							Record: "lagg:index_errors:rate5m",
							Expr:   `sum(rate(lagg_index_search_errors_total[5m]))`,
						},
						{
							Record: "lagg:warm_failures:rate5m",
							Expr:   `sum(rate(lagg_warm_runs_total{outcome="failure"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
