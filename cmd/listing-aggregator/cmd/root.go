// Package cmd implements the CLI commands for listing-aggregator.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "listing-aggregator",
	Short: "Serve fairly interleaved marketplace listing pages",
	Long: "An API service that pages through active listings for a category, " +
		"interleaving results round-robin across sellers so no single seller " +
		"dominates a page. Pages are cached and hot categories can be prewarmed.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
