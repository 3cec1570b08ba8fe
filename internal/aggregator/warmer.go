package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

// Warm run outcomes.
const (
	warmSuccess = "success"
	warmFailure = "failure"
)

const defaultWarmTimeout = 30 * time.Second

// Refresher recomputes and caches a page. *Service implements it.
type Refresher interface {
	Refresh(ctx context.Context, req domain.PageRequest) (*domain.Page, error)
}

// Warmer periodically refreshes the first page of hot categories so their
// first visitors hit the cache.
type Warmer struct {
	cron       *cron.Cron
	refresher  Refresher
	categories []int64
	timeout    time.Duration
	log        *slog.Logger
	entryID    cron.EntryID
}

// NewWarmer creates a Warmer that refreshes categories every interval.
func NewWarmer(
	r Refresher,
	interval time.Duration,
	categories []int64,
	log *slog.Logger,
) (*Warmer, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("warm interval must be positive, got %s", interval)
	}

	c := cron.New()

	w := &Warmer{
		cron:       c,
		refresher:  r,
		categories: categories,
		timeout:    defaultWarmTimeout,
		log:        log,
	}

	id, err := c.AddFunc("@every "+interval.String(), w.runScheduled)
	if err != nil {
		return nil, err
	}
	w.entryID = id

	return w, nil
}

// Start begins running scheduled warm runs.
func (w *Warmer) Start() {
	w.log.Info("cache warmer started", "categories", w.categories)
	w.cron.Start()
	w.SyncNextRunTimestamp()
}

// Stop gracefully stops the warmer, waiting for a running warm to finish.
func (w *Warmer) Stop() context.Context {
	w.log.Info("cache warmer stopping")
	return w.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (w *Warmer) Entries() []cron.Entry {
	return w.cron.Entries()
}

// SyncNextRunTimestamp publishes the next scheduled run time as a metric.
func (w *Warmer) SyncNextRunTimestamp() {
	next := w.cron.Entry(w.entryID).Next
	if next.IsZero() {
		return
	}
	metrics.WarmerNextRunTimestamp.Set(float64(next.Unix()))
}

// RunOnce refreshes page one of every configured category with the default
// sort and no filters. It attempts every category and joins the failures.
func (w *Warmer) RunOnce(ctx context.Context) error {
	var errs []error
	for _, id := range w.categories {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req := domain.PageRequest{
			CategoryID: id,
			Page:       1,
			Sort:       domain.DefaultSort(),
		}

		page, err := w.refresher.Refresh(ctx, req)
		if err != nil {
			metrics.WarmRunsTotal.WithLabelValues(warmFailure).Inc()
			w.log.Warn("warming category failed", "category_id", id, "error", err)
			errs = append(errs, fmt.Errorf("warming category %d: %w", id, err))
			continue
		}

		metrics.WarmRunsTotal.WithLabelValues(warmSuccess).Inc()
		w.log.Debug("warmed category", "category_id", id, "listings", len(page.Listings))
	}
	return errors.Join(errs...)
}

func (w *Warmer) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	w.log.Info("scheduled cache warm starting")
	if err := w.RunOnce(ctx); err != nil {
		w.log.Error("scheduled cache warm failed", "error", err)
	}
	w.SyncNextRunTimestamp()
}
