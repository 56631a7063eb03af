package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RamiAli24/taskdb/internal/database"
)

func TestNewPool_unparseableURL_returnsInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := database.NewPool(context.Background(), "not a url at all")

	require.ErrorIs(t, err, database.ErrInvalidDatabaseURL)
}

func TestErrors_sentinels(t *testing.T) {
	t.Parallel()

	require.EqualError(t, database.ErrDatabaseExists, "database already exists")
	require.EqualError(t, database.ErrDatabaseNotFound, "database does not exist")
	require.EqualError(t, database.ErrConnectionFailed, "database connection failed")
	require.EqualError(t, database.ErrLockNotAcquired, "migration lock not acquired")
}
