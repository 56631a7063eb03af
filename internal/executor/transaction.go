package executor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RamiAli24/taskdb/internal/parser"
)

// ExecInTransaction wraps fn in a single transaction, the unit a
// migration file commits or rolls back as: any statement failing rolls
// back every statement the file already ran.
func ExecInTransaction(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // rollback on committed tx returns ErrTxClosed

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ExecStatements runs each statement of a migration file on its own, with
// no surrounding transaction block. This is the execution path for files
// containing CREATE INDEX CONCURRENTLY, which Postgres rejects inside a
// transaction; a failure partway leaves the earlier statements committed,
// so such files should hold as little else as possible.
func ExecStatements(ctx context.Context, pool *pgxpool.Pool, sql string) error {
	stmts, err := parser.SplitStatements(sql)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing statement outside transaction: %w", err)
		}
	}

	return nil
}
