package parser //nolint:revive // intentional: does not conflict with go/parser in internal package

import (
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// Statements parses a PostgreSQL SQL string and returns its raw statements.
// Empty or whitespace-only input yields zero statements.
func Statements(sql string) ([]*pg_query.RawStmt, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, nil
	}

	tree, err := pg_query.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parsing SQL: %w", err)
	}

	return tree.Stmts, nil
}

// SplitStatements parses sql and returns each statement's source text,
// sliced from the input via the parser's statement offsets.
func SplitStatements(sql string) ([]string, error) {
	trimmed := strings.TrimSpace(sql)
	if trimmed == "" {
		return nil, nil
	}

	tree, err := pg_query.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parsing SQL: %w", err)
	}

	stmts := make([]string, 0, len(tree.Stmts))

	for _, raw := range tree.Stmts {
		start := raw.StmtLocation

		// StmtLen 0 means the statement runs to the end of the input.
		end := int32(len(trimmed))
		if raw.StmtLen > 0 {
			end = start + raw.StmtLen
		}

		stmt := strings.TrimSpace(trimmed[start:end])
		if stmt == "" {
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}
