package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/listing-aggregator/internal/aggregator"
	"github.com/donaldgifford/listing-aggregator/internal/config"
	"github.com/donaldgifford/listing-aggregator/internal/telemetry"
	"github.com/donaldgifford/listing-aggregator/pkg/logger"
)

var warmCategories []int64

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Refresh cached first pages once and exit",
	Long: "Recomputes page 1 of each configured category with the default sort and " +
		"writes it to the cache. Categories given with --category override warm.categories.",
	RunE: runWarm,
}

func init() {
	warmCmd.Flags().Int64SliceVar(&warmCategories, "category", nil, "category IDs to warm")
	rootCmd.AddCommand(warmCmd)
}

func runWarm(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	categories := cfg.Warm.Categories
	if len(warmCategories) > 0 {
		categories = warmCategories
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories to warm: set warm.categories or pass --category")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if cfg.Cache.Backend != config.CacheBackendRedis {
		log.Warn("warmed pages are not shared with servers unless the cache backend is redis",
			"cache_backend", cfg.Cache.Backend,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	deps, err := openDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Warn("closing dependencies", "error", err)
		}
	}()

	svc := newService(cfg, deps, telemetry.Noop(), log)

	warmer, err := aggregator.NewWarmer(svc, cfg.Warm.Interval, categories, log)
	if err != nil {
		return fmt.Errorf("creating cache warmer: %w", err)
	}

	if err := warmer.RunOnce(ctx); err != nil {
		return fmt.Errorf("warming cache: %w", err)
	}

	log.Info("cache warmed", "categories", categories)
	return nil
}
