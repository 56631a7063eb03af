package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RamiAli24/taskdb/internal/database"
	"github.com/RamiAli24/taskdb/internal/migration"
)

// Progress status constants reported via ProgressEvent.
const (
	StatusStarting  = "starting"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusPending   = "pending" // dry-run only: would be applied
)

// ProgressEvent is emitted by the executor for each migration processed.
type ProgressEvent struct {
	Migration *migration.Migration
	Status    string
	Duration  time.Duration
	Error     error
}

// MigrationTracker abstracts schema_migrations operations for testability.
type MigrationTracker interface {
	EnsureTable(ctx context.Context) error
	MaxVersion(ctx context.Context) (string, bool, error)
	Record(ctx context.Context, version, checksum string) error
}

// lockReleaser is returned by lockFn and must be released when done.
type lockReleaser interface {
	Release(ctx context.Context) error
}

// lockFunc acquires an advisory lock and returns a releaser.
type lockFunc func(ctx context.Context) (lockReleaser, error)

// sqlExecFunc executes a single migration's SQL.
type sqlExecFunc func(ctx context.Context, m *migration.Migration) error

// Executor applies pending migrations in ascending version order, one
// transaction per file, guarded by an advisory lock so two invocations
// against the same database cannot interleave.
type Executor struct {
	pool             *pgxpool.Pool
	tracker          MigrationTracker
	lockTimeout      time.Duration
	statementTimeout time.Duration
	dryRun           bool
	onProgress       func(ProgressEvent)
	acquireLock      lockFunc
	execSQL          sqlExecFunc
}

// Option configures an Executor.
type Option func(*Executor)

// WithLockTimeout sets the per-transaction lock_timeout.
func WithLockTimeout(d time.Duration) Option {
	return func(e *Executor) { e.lockTimeout = d }
}

// WithStatementTimeout sets the per-transaction statement_timeout.
func WithStatementTimeout(d time.Duration) Option {
	return func(e *Executor) { e.statementTimeout = d }
}

// WithDryRun enables dry-run mode where no SQL is executed.
func WithDryRun(b bool) Option {
	return func(e *Executor) { e.dryRun = b }
}

// WithProgressCallback sets a function called for each migration processed.
func WithProgressCallback(fn func(ProgressEvent)) Option {
	return func(e *Executor) { e.onProgress = fn }
}

// New creates an Executor with the given pool, tracker, and options.
func New(pool *pgxpool.Pool, t MigrationTracker, opts ...Option) *Executor {
	e := &Executor{
		pool:    pool,
		tracker: t,
	}

	for _, opt := range opts {
		opt(e)
	}

	// Set defaults for injectable functions after options are applied,
	// so tests can override them via options.
	if e.acquireLock == nil {
		e.acquireLock = func(ctx context.Context) (lockReleaser, error) {
			return database.TryAcquireLock(ctx, e.pool)
		}
	}

	if e.execSQL == nil {
		e.execSQL = e.executeMigration
	}

	return e
}

// Apply executes pending migrations in ascending version order. A migration
// is pending when its version is greater than the highest applied version;
// anything at or below that watermark is never re-applied. The first failure
// aborts the run, leaving earlier commits in place.
func (e *Executor) Apply(ctx context.Context, migrations []migration.Migration) error {
	lock, err := e.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("acquiring migration lock: %w", err)
	}
	defer lock.Release(ctx) //nolint:errcheck // best-effort release on return

	if err := e.tracker.EnsureTable(ctx); err != nil {
		return err
	}

	maxApplied, any, err := e.tracker.MaxVersion(ctx)
	if err != nil {
		return err
	}

	sorted := migration.Sort(migrations)

	for i := range sorted {
		m := &sorted[i]

		if any && migration.Compare(m.Version, maxApplied) <= 0 {
			e.fireProgress(ProgressEvent{Migration: m, Status: StatusSkipped})
			continue
		}

		if err := e.applyOne(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

// applyOne executes a single pending migration, records it, and fires
// progress events.
func (e *Executor) applyOne(ctx context.Context, m *migration.Migration) error {
	if e.dryRun {
		e.fireProgress(ProgressEvent{Migration: m, Status: StatusPending})

		return nil
	}

	e.fireProgress(ProgressEvent{Migration: m, Status: StatusStarting})

	start := time.Now()
	execErr := e.execSQL(ctx, m)
	duration := time.Since(start)

	if execErr != nil {
		e.fireProgress(ProgressEvent{
			Migration: m,
			Status:    StatusFailed,
			Duration:  duration,
			Error:     execErr,
		})

		return fmt.Errorf("%w: %s: %w", ErrMigrationFailed, m.Version, execErr)
	}

	if err := e.tracker.Record(ctx, m.Version, m.Checksum); err != nil {
		return fmt.Errorf("recording migration %s: %w", m.Version, err)
	}

	e.fireProgress(ProgressEvent{
		Migration: m,
		Status:    StatusCompleted,
		Duration:  duration,
	})

	return nil
}

// executeMigration runs the SQL for a single migration. A file containing
// CREATE INDEX CONCURRENTLY cannot run inside a transaction block, so its
// statements are executed one at a time instead.
func (e *Executor) executeMigration(ctx context.Context, m *migration.Migration) error {
	concurrent, err := containsConcurrentIndex(m.SQL)
	if err != nil {
		return err
	}

	if concurrent {
		return ExecStatements(ctx, e.pool, m.SQL)
	}

	return ExecInTransaction(ctx, e.pool, func(tx pgx.Tx) error {
		if e.lockTimeout > 0 {
			if err := SetLockTimeout(ctx, tx, e.lockTimeout); err != nil {
				return err
			}
		}

		if e.statementTimeout > 0 {
			if err := SetStatementTimeout(ctx, tx, e.statementTimeout); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("executing SQL: %w", err)
		}

		return nil
	})
}

func (e *Executor) fireProgress(event ProgressEvent) {
	if e.onProgress != nil {
		e.onProgress(event)
	}
}
