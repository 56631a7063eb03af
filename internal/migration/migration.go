package migration

import (
	"crypto/sha256"
	"encoding/hex"
)

// Migration represents a single schema change loaded from disk.
// Migrations are one-way; there is no down counterpart.
type Migration struct {
	Version  string // "0001" or "20240101120000", extracted from filename
	Name     string // "init", extracted from filename
	SQL      string // contents of the .sql file
	Checksum string // SHA-256 hex digest of SQL
	FilePath string // path the file was loaded from
}

// ComputeChecksum returns the SHA-256 hex digest of the given SQL string.
func ComputeChecksum(sql string) string {
	h := sha256.Sum256([]byte(sql))

	return hex.EncodeToString(h[:])
}
