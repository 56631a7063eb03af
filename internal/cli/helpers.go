package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RamiAli24/taskdb/internal/config"
	"github.com/RamiAli24/taskdb/internal/database"
	"github.com/RamiAli24/taskdb/internal/migration"
)

// connectTarget opens a pool against the configured target database.
func connectTarget(ctx context.Context, cfg *config.Config, out io.Writer) (*pgxpool.Pool, error) {
	fmt.Fprintf(out, "Connecting to %s\n", config.RedactURL(cfg.DatabaseURL))

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return pool, nil
}

// connectServer opens a pool against the server-level maintenance database
// and returns the name of the target database.
func connectServer(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, string, error) {
	serverURL, dbName, err := database.SplitTarget(cfg.DatabaseURL)
	if err != nil {
		return nil, "", err
	}

	pool, err := database.NewPool(ctx, serverURL)
	if err != nil {
		return nil, "", fmt.Errorf("connecting to server: %w", err)
	}

	return pool, dbName, nil
}

// loadMigrations reads and sorts the migration files for the run.
// Returns nil migrations (and nil error) when the directory holds none.
func loadMigrations(dir string, out io.Writer) ([]migration.Migration, error) {
	migrations, err := migration.LoadFromDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}

	if len(migrations) == 0 {
		fmt.Fprintln(out, "No migration files found.")
		return nil, nil //nolint:nilnil // nil,nil signals "no migrations, no error"
	}

	return migrations, nil
}

// commandContext returns the command's context, falling back to Background.
func commandContext(cmd interface{ Context() context.Context }) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
