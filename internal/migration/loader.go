package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// filenamePattern matches migration files of the form
//
//	{version}_{name}.sql  (e.g., 0001_init.sql, 20240101120000_add_index.sql)
//
// where version is any run of decimal digits.
var filenamePattern = regexp.MustCompile(`^(\d+)_(.+)\.sql$`)

// LoadFromDir scans a directory for migration files and returns them sorted
// in ascending version order. Files that do not match the naming pattern are
// skipped.
func LoadFromDir(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading migrations directory %s: %w", dir, err)
	}

	var migrations []Migration

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matches := filenamePattern.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}

		m, err := readMigration(dir, entry.Name(), matches[1], matches[2])
		if err != nil {
			return nil, err
		}

		migrations = append(migrations, m)
	}

	return Sort(migrations), nil
}

// readMigration reads a migration file and builds a Migration.
func readMigration(dir, filename, version, name string) (Migration, error) {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return Migration{}, fmt.Errorf("reading migration file %s: %w", path, err)
	}

	sql := strings.TrimSpace(string(data))

	return Migration{
		Version:  version,
		Name:     name,
		SQL:      sql,
		Checksum: ComputeChecksum(sql),
		FilePath: path,
	}, nil
}
