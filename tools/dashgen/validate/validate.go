// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the server does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/listing-aggregator/tools/dashgen/rules"
)

// Histogram and summary series suffixes stripped before lookup.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings are
// informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard parses every panel query in dash and checks the referenced
// metrics against known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}

	raw, err := json.Marshal(dash)
	if err != nil {
		res.errorf("encoding dashboard: %v", err)
		return res
	}

	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	for _, p := range doc.Panels {
		checkPanel(res, p, known)
		for _, inner := range p.Panels {
			checkPanel(res, inner, known)
		}
	}

	return res
}

type panelJSON struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Targets []target    `json:"targets"`
	Panels  []panelJSON `json:"panels"`
}

type target struct {
	Expr  string `json:"expr"`
	RefID string `json:"refId"`
}

func checkPanel(res *Result, p panelJSON, known map[string]bool) {
	if p.Type == "row" {
		return
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no queries", p.Title)
		return
	}
	for _, t := range p.Targets {
		where := fmt.Sprintf("panel %q query %s", p.Title, t.RefID)
		checkExpr(res, where, t.Expr, known)
	}
}

// Rules parses every rule expression in cr. Names recorded earlier in the
// same resource are accepted as known metrics.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %q has a rule with neither record nor alert", g.Name)
				continue
			}
			if r.Record != "" && !known[r.Record] {
				res.warnf("recording rule %q is not listed as a known metric", r.Record)
			}
			checkExpr(res, fmt.Sprintf("rule %q", name), r.Expr, known)
		}
	}

	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %v", where, err)
		return
	}

	for _, name := range MetricNames(parsed) {
		if !known[baseName(name)] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// MetricNames returns the metric names selected anywhere in expr.
func MetricNames(expr parser.Expr) []string {
	var names []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func baseName(name string) string {
	for _, suffix := range seriesSuffixes {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}
