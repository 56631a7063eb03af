package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppliedMigration represents a record from the schema_migrations table.
type AppliedMigration struct {
	Version   string
	Checksum  string
	AppliedAt time.Time
}

// Tracker manages the schema_migrations table.
type Tracker struct {
	pool *pgxpool.Pool
}

// New creates a Tracker backed by the given connection pool.
func New(pool *pgxpool.Pool) *Tracker {
	return &Tracker{pool: pool}
}

// EnsureTable creates the schema_migrations table if it does not exist.
func (t *Tracker) EnsureTable(ctx context.Context) error {
	_, err := t.pool.Exec(ctx, createSchemaSQL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTableCreation, err)
	}

	return nil
}

// GetApplied returns all recorded migrations ordered by version.
func (t *Tracker) GetApplied(ctx context.Context) ([]AppliedMigration, error) {
	rows, err := t.pool.Query(ctx,
		`SELECT version, checksum, applied_at
		 FROM schema_migrations
		 ORDER BY version::numeric`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying applied migrations: %w", err)
	}
	defer rows.Close()

	applied, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (AppliedMigration, error) {
		var m AppliedMigration
		if scanErr := row.Scan(&m.Version, &m.Checksum, &m.AppliedAt); scanErr != nil {
			return AppliedMigration{}, fmt.Errorf("scanning migration row: %w", scanErr)
		}

		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning applied migrations: %w", err)
	}

	return applied, nil
}

// MaxVersion returns the highest applied version, or ok=false when the
// tracking table is empty. Versions are decimal text of varying width,
// so the ordering casts to numeric.
func (t *Tracker) MaxVersion(ctx context.Context) (string, bool, error) {
	var version *string

	err := t.pool.QueryRow(ctx,
		`SELECT version FROM schema_migrations
		 ORDER BY version::numeric DESC
		 LIMIT 1`,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("querying max applied version: %w", err)
	}

	return *version, true, nil
}

// Record inserts a migration record with the given version and checksum.
// Records are immutable once written; a duplicate version is an error.
func (t *Tracker) Record(ctx context.Context, version, checksum string) error {
	_, err := t.pool.Exec(ctx,
		`INSERT INTO schema_migrations (version, checksum) VALUES ($1, $2)`,
		version, checksum,
	)
	if err != nil {
		return fmt.Errorf("recording migration %s: %w", version, err)
	}

	return nil
}

// GetChecksum returns the recorded checksum for a migration version.
func (t *Tracker) GetChecksum(ctx context.Context, version string) (string, error) {
	var checksum string

	err := t.pool.QueryRow(ctx,
		`SELECT checksum FROM schema_migrations WHERE version = $1`,
		version,
	).Scan(&checksum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("migration %s: %w", version, ErrMigrationNotFound)
		}

		return "", fmt.Errorf("getting checksum for migration %s: %w", version, err)
	}

	return checksum, nil
}
