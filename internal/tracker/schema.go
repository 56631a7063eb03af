package tracker

// createSchemaSQL is the DDL for the schema_migrations tracking table.
// Records are append-only; they are only ever removed by dropping the
// whole database.
const createSchemaSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version     TEXT PRIMARY KEY,
    checksum    TEXT NOT NULL,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
