package executor

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v6"

	"github.com/RamiAli24/taskdb/internal/parser"
)

// containsConcurrentIndex parses the SQL and returns true if any statement
// is a CREATE INDEX CONCURRENTLY. Such statements cannot run inside a
// transaction block and must be executed directly on the pool.
func containsConcurrentIndex(sql string) (bool, error) {
	stmts, err := parser.Statements(sql)
	if err != nil {
		return false, fmt.Errorf("parsing SQL for concurrent index detection: %w", err)
	}

	for _, stmt := range stmts {
		node, ok := stmt.Stmt.Node.(*pg_query.Node_IndexStmt)
		if !ok {
			continue
		}

		if node.IndexStmt != nil && node.IndexStmt.Concurrent {
			return true, nil
		}
	}

	return false, nil
}
