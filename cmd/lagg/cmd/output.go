package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/listing-aggregator/internal/api/client"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSELLER\tTITLE\tPRICE\tRANK\n")
	for i := range listings {
		tw.writef("%d\t%d\t%s\t%s\t%s\n",
			listings[i].ID,
			listings[i].SellerID,
			truncate(listings[i].Title, 40),
			listings[i].Price.StringFixed(2),
			listings[i].RankScore.String(),
		)
	}
	return tw.finish()
}

func printReadiness(w io.Writer, r *apiclient.ReadinessResponse) error {
	tw := newTabWriter(w)
	tw.writef("Status:\t%s\n", r.Status)

	names := make([]string, 0, len(r.Checks))
	for name := range r.Checks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		tw.writef("%s:\t%s\n", name, r.Checks[name])
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
