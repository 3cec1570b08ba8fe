package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/listing-aggregator/internal/aggregator"
	"github.com/donaldgifford/listing-aggregator/internal/api/handlers"
	"github.com/donaldgifford/listing-aggregator/internal/config"
	"github.com/donaldgifford/listing-aggregator/internal/telemetry"
	"github.com/donaldgifford/listing-aggregator/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and cache warmer",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, telemetryConfig(cfg))
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown", "error", err)
		}
	}()

	deps, err := openDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Warn("closing dependencies", "error", err)
		}
	}()

	svc := newService(cfg, deps, tel, log)

	if cfg.Warm.Enabled {
		warmer, err := aggregator.NewWarmer(svc, cfg.Warm.Interval, cfg.Warm.Categories, log)
		if err != nil {
			return fmt.Errorf("creating cache warmer: %w", err)
		}
		warmer.Start()
		defer func() { <-warmer.Stop().Done() }()
		log.Info("cache warmer started",
			"interval", cfg.Warm.Interval,
			"categories", cfg.Warm.Categories,
		)
	}

	health := handlers.NewHealthHandler(deps.store, deps.index, deps.cache)
	e := newRouter(log, svc, health)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func telemetryConfig(cfg *config.Config) telemetry.Config {
	return telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: Version,
	}
}

