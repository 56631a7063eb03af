package database

import "errors"

// ErrInvalidDatabaseURL indicates the provided database URL could not be parsed.
var ErrInvalidDatabaseURL = errors.New("invalid database URL")

// ErrConnectionFailed indicates a connection to the server could not be established.
var ErrConnectionFailed = errors.New("database connection failed")

// ErrDatabaseExists indicates create was asked for a database that is already present.
var ErrDatabaseExists = errors.New("database already exists")

// ErrDatabaseNotFound indicates drop was asked for a database that does not exist.
var ErrDatabaseNotFound = errors.New("database does not exist")

// ErrLockNotAcquired indicates the migration lock is already held by another process.
var ErrLockNotAcquired = errors.New("migration lock not acquired")
