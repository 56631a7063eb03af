package executor

import "errors"

// ErrMigrationFailed indicates a migration file failed to execute.
// Migrations committed before the failure stay applied.
var ErrMigrationFailed = errors.New("migration failed")
