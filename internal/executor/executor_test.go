package executor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamiAli24/taskdb/internal/executor"
	"github.com/RamiAli24/taskdb/internal/migration"
)

func TestNew_defaultOptions(t *testing.T) {
	t.Parallel()

	exec := executor.New(nil, nil)

	require.NotNil(t, exec)
}

func TestNew_withOptions(t *testing.T) {
	t.Parallel()

	var received []executor.ProgressEvent
	cb := func(e executor.ProgressEvent) { received = append(received, e) }

	exec := executor.New(nil, nil,
		executor.WithLockTimeout(10*time.Second),
		executor.WithStatementTimeout(30*time.Second),
		executor.WithDryRun(true),
		executor.WithProgressCallback(cb),
	)

	require.NotNil(t, exec)
}

func TestProgressEvent_fields(t *testing.T) {
	t.Parallel()

	m := &migration.Migration{Version: "0001", Name: "init"}
	testErr := errors.New("test error")

	event := executor.ProgressEvent{
		Migration: m,
		Status:    executor.StatusFailed,
		Duration:  5 * time.Second,
		Error:     testErr,
	}

	assert.Equal(t, m, event.Migration)
	assert.Equal(t, executor.StatusFailed, event.Status)
	assert.Equal(t, 5*time.Second, event.Duration)
	assert.ErrorIs(t, event.Error, testErr)
}

func TestStatusConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "starting", executor.StatusStarting)
	assert.Equal(t, "completed", executor.StatusCompleted)
	assert.Equal(t, "failed", executor.StatusFailed)
	assert.Equal(t, "skipped", executor.StatusSkipped)
	assert.Equal(t, "pending", executor.StatusPending)
}

func TestErrMigrationFailed_sentinel(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, executor.ErrMigrationFailed, "migration failed")
}
