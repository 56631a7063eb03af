package database

import (
	"fmt"
	"net/url"
	"strings"
)

// maintenanceDB is the database used for server-level statements such as
// CREATE DATABASE and DROP DATABASE, which cannot run against the database
// they target.
const maintenanceDB = "postgres"

// SplitTarget parses a connection URL and returns the same URL pointed at
// the maintenance database, together with the name of the target database.
func SplitTarget(databaseURL string) (serverURL, dbName string, err error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidDatabaseURL, err)
	}

	dbName = strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("%w: no database name in %s", ErrInvalidDatabaseURL, u.Redacted())
	}

	u.Path = "/" + maintenanceDB

	return u.String(), dbName, nil
}
