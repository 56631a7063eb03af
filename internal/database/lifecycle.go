package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL SQLSTATE codes surfaced by create/drop conflicts.
const (
	sqlstateDuplicateDatabase  = "42P04"
	sqlstateInvalidCatalogName = "3D000"
)

// Create issues CREATE DATABASE for name on a server-level connection.
// Returns ErrDatabaseExists if the database is already present.
func Create(ctx context.Context, pool *pgxpool.Pool, name string) error {
	sql := "CREATE DATABASE " + pgx.Identifier{name}.Sanitize()

	if _, err := pool.Exec(ctx, sql); err != nil {
		if sqlstate(err) == sqlstateDuplicateDatabase {
			return fmt.Errorf("%w: %s", ErrDatabaseExists, name)
		}

		return fmt.Errorf("creating database %s: %w", name, err)
	}

	return nil
}

// Drop terminates active backends connected to name and issues DROP DATABASE
// on a server-level connection. Returns ErrDatabaseNotFound if the database
// is absent.
func Drop(ctx context.Context, pool *pgxpool.Pool, name string) error {
	// Postgres refuses to drop a database with open connections; kick them
	// out first. Failure here is not fatal on its own since the database may
	// simply not exist.
	_, _ = pool.Exec(ctx,
		`SELECT pg_terminate_backend(pid)
		 FROM pg_stat_activity
		 WHERE datname = $1 AND pid <> pg_backend_pid()`,
		name,
	)

	sql := "DROP DATABASE " + pgx.Identifier{name}.Sanitize()

	if _, err := pool.Exec(ctx, sql); err != nil {
		if sqlstate(err) == sqlstateInvalidCatalogName {
			return fmt.Errorf("%w: %s", ErrDatabaseNotFound, name)
		}

		return fmt.Errorf("dropping database %s: %w", name, err)
	}

	return nil
}

// sqlstate extracts the PostgreSQL error code from err, or "" if err is not
// a server error.
func sqlstate(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
