// Package seed executes the project's seed script against the target
// database. Seed data is not version-tracked; scripts are expected to be
// written idempotently by convention.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrScriptFailed indicates the seed script could not be executed.
var ErrScriptFailed = errors.New("seed script failed")

// Run reads the seed script at path and executes it as-is. The script runs
// with whatever transactional behavior it declares itself; no wrapping
// transaction is added.
func Run(ctx context.Context, pool *pgxpool.Pool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading seed file %s: %w", path, err)
	}

	sql := strings.TrimSpace(string(data))
	if sql == "" {
		return nil
	}

	if _, err := pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScriptFailed, path, err)
	}

	return nil
}
