package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Lifecycle commands are short-lived: one verb runs a handful of
// statements and exits, and migrations execute on one connection at a
// time. A small pool with a bounded connect timeout keeps a wrong URL or
// unreachable server from hanging the command.
const (
	poolMaxConns       = 4
	poolConnectTimeout = 10 * time.Second
)

// NewPool opens a connection pool for databaseURL and verifies it with a
// ping, so connectivity problems surface before any lifecycle work starts.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDatabaseURL, err)
	}

	cfg.MaxConns = poolMaxConns
	cfg.ConnConfig.ConnectTimeout = poolConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return pool, nil
}
