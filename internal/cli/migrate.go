package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/config"
	"github.com/RamiAli24/taskdb/internal/executor"
	"github.com/RamiAli24/taskdb/internal/migration"
	"github.com/RamiAli24/taskdb/internal/tracker"
)

var migrateCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long: `Apply migration files whose version is greater than the highest
applied version, each in its own transaction, recording version and
checksum on success. The first failure aborts the run; earlier
migrations stay committed.`,
	RunE: runMigrate,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	migrateCmd.Flags().Bool("dry-run", false, "show what would be applied without executing")
	migrateCmd.Flags().Duration("lock-timeout", 0, "override lock timeout (e.g., 10s, 1m)")
	migrateCmd.Flags().Duration("statement-timeout", 0, "override statement timeout (e.g., 30s, 5m)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := AppConfig

	if err := resolveDatabaseURL(cfg); err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	lockTimeout := cfg.LockTimeout
	if cmd.Flags().Changed("lock-timeout") {
		lockTimeout, _ = cmd.Flags().GetDuration("lock-timeout")
	}

	stmtTimeout := cfg.StatementTimeout
	if cmd.Flags().Changed("statement-timeout") {
		stmtTimeout, _ = cmd.Flags().GetDuration("statement-timeout")
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	migrations, err := loadMigrations(cfg.MigrationsDir, out)
	if err != nil || migrations == nil {
		return err
	}

	pool, err := connectTarget(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer pool.Close()

	return executeMigrations(ctx, out, pool, migrations, migrateOpts{
		lockTimeout: lockTimeout,
		stmtTimeout: stmtTimeout,
		dryRun:      dryRun,
	})
}

type migrateOpts struct {
	lockTimeout time.Duration
	stmtTimeout time.Duration
	dryRun      bool
}

// executeMigrations runs the executor over the loaded migration set,
// rendering progress to out. Shared by migrate and reset.
func executeMigrations(
	ctx context.Context,
	out io.Writer,
	pool *pgxpool.Pool,
	migrations []migration.Migration,
	opts migrateOpts,
) error {
	t := tracker.New(pool)

	applied := 0
	pending := 0
	skipped := 0

	exec := executor.New(pool, t,
		executor.WithLockTimeout(opts.lockTimeout),
		executor.WithStatementTimeout(opts.stmtTimeout),
		executor.WithDryRun(opts.dryRun),
		executor.WithProgressCallback(func(event executor.ProgressEvent) {
			switch event.Status {
			case executor.StatusStarting:
				fmt.Fprintf(out, "  Applying %s_%s ... ", event.Migration.Version, event.Migration.Name)
			case executor.StatusCompleted:
				fmt.Fprintf(out, "done (%s)\n", event.Duration.Truncate(time.Millisecond))
				applied++
			case executor.StatusPending:
				fmt.Fprintf(out, "  Would apply %s_%s\n", event.Migration.Version, event.Migration.Name)
				pending++
			case executor.StatusSkipped:
				skipped++
			case executor.StatusFailed:
				fmt.Fprintf(out, "FAILED\n")
				fmt.Fprintf(out, "    Error: %v\n", event.Error)
			}
		}),
	)

	if opts.dryRun {
		fmt.Fprintln(out, "\n--- DRY RUN (no changes will be made) ---")
	}

	if err := exec.Apply(ctx, migrations); err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintf(out, "\nDry run complete: %d migration(s) would be applied, %d already applied.\n",
			pending, skipped)
	} else {
		fmt.Fprintf(out, "\nMigrate complete: %d applied, %d skipped.\n", applied, skipped)
	}

	return nil
}

// applyConfiguredMigrations is the migrate step reused by reset: load,
// connect, execute with the config's timeouts.
func applyConfiguredMigrations(ctx context.Context, cfg *config.Config, out io.Writer) error {
	migrations, err := loadMigrations(cfg.MigrationsDir, out)
	if err != nil || migrations == nil {
		return err
	}

	pool, err := connectTarget(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer pool.Close()

	return executeMigrations(ctx, out, pool, migrations, migrateOpts{
		lockTimeout: cfg.LockTimeout,
		stmtTimeout: cfg.StatementTimeout,
	})
}
