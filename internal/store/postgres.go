package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldgifford/listing-aggregator/internal/metrics"
	domain "github.com/donaldgifford/listing-aggregator/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Option configures the PostgresStore pool.
type Option func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) Option {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n) //nolint:gosec // pool size from validated config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// ActiveSellers returns the sellers with active listings in the category that
// satisfy the filters. The lookup holds one pooled connection, released on
// every return path.
func (s *PostgresStore) ActiveSellers(
	ctx context.Context,
	categoryID int64,
	filters domain.FilterSet,
) ([]int64, error) {
	start := time.Now()
	defer func() {
		metrics.DirectoryQueryDuration.Observe(time.Since(start).Seconds())
	}()

	q := &ActiveSellersQuery{CategoryID: categoryID, Filters: filters}
	sql, args, err := q.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building seller query: %w", err)
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying active sellers: %w", err)
	}
	defer rows.Close()

	sellers := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning seller id: %w", err)
		}
		sellers = append(sellers, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active sellers: %w", err)
	}

	return sellers, nil
}
