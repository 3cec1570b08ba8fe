package store

// SQL query constants.
// All SQL lives here; PostgresStore methods and query builders reference these constants.

const baseActiveSellersSelect = `SELECT DISTINCT seller_id FROM listings`

const (
	queryCreateMigrationsTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	queryMigrationApplied = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`

	queryRecordMigration = `INSERT INTO schema_migrations (version) VALUES ($1)`
)
