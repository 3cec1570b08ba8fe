package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/listing-aggregator/internal/api/client"
)

func listingsCmd() *cobra.Command {
	var params apiclient.GetListingsParams

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Fetch one page of listings",
		Long: "Fetch one page of active listings for a category. Listings are\n" +
			"interleaved round-robin across sellers, so the page shows each\n" +
			"seller's best listing before any seller's second.",
		Example: `  # First page of the default category
  lagg listings

  # Page 3 of category 7, cheapest first within each seller
  lagg listings --category 7 --page 3 --sort-by price --sort-order asc

  # Restrict to a price band and print JSON
  lagg listings --category 7 --price-min 10 --price-max 250 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().GetListings(cmd.Context(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}

			if len(resp.Data) == 0 {
				_, err := fmt.Fprintln(out, "No listings found.")
				return err
			}

			if _, err := fmt.Fprintf(out, "Page %d (%d listings)\n\n", resp.Page, len(resp.Data)); err != nil {
				return err
			}
			return printListingsTable(out, resp.Data)
		},
	}

	cmd.Flags().Int64Var(&params.CategoryID, "category", 0, "category ID (server default 1)")
	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based page number (server default 1)")
	cmd.Flags().StringVar(&params.SortBy, "sort-by", "", "secondary sort field: rank_score, price, id")
	cmd.Flags().StringVar(&params.SortOrder, "sort-order", "", "secondary sort direction: asc, desc")
	cmd.Flags().StringVar(&params.PriceMin, "price-min", "", "inclusive lower price bound")
	cmd.Flags().StringVar(&params.PriceMax, "price-max", "", "inclusive upper price bound")

	return cmd
}

func readyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness",
		Long:  "Query /readyz and print the status of each downstream dependency.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Ready(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			return printReadiness(out, resp)
		},
	}
}
