package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// listing-aggregator operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lagg-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lagg-alerts",
					Rules: []Rule{
						{
							Alert: "LaggDown",
							Expr:  `absent(up{job="listing-aggregator"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Aggregator is down",
								"description": "The listing-aggregator job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "LaggReadinessDown",
							Expr:  `lagg_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Aggregator readiness check is failing",
								"description": "The database or search index has been unreachable for more than 2 minutes.",
							},
						},
						{
							Alert: "LaggHighErrorRate",
							Expr:  `lagg:http_errors:rate5m / lagg:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Listing Aggregator",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "LaggDownstreamErrors",
							Expr:  `lagg:aggregation_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Downstream failures in stage {{ $labels.stage }}",
								"description": "Aggregations are failing at more than 0.1/s in the {{ $labels.stage }} stage.",
							},
						},
						{
							Alert: "LaggCacheHitRatioLow",
							Expr:  `lagg:cache_hit_ratio:rate5m < 0.2`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "info",
							},
							Annotations: map[string]string{
								"summary":     "Result cache hit ratio is low",
								"description": "Fewer than 20% of listing page lookups have hit the cache for 15 minutes.",
							},
						},
						{
							Alert: "LaggWarmFailures",
							Expr:  `lagg:warm_failures:rate5m > 0`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Cache warmer is failing",
								"description": "Scheduled category refreshes have been failing for more than 10 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
