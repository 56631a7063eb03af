package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamiAli24/taskdb/internal/parser"
)

func TestStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sql       string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "single statement",
			sql:       "CREATE TABLE tasks (id UUID PRIMARY KEY);",
			wantCount: 1,
		},
		{
			name:      "multiple statements",
			sql:       "CREATE TABLE a (id INT); CREATE TABLE b (id INT); INSERT INTO a VALUES (1);",
			wantCount: 3,
		},
		{
			name:      "empty input",
			sql:       "",
			wantCount: 0,
		},
		{
			name:      "whitespace-only input",
			sql:       "   \n\t  ",
			wantCount: 0,
		},
		{
			name:    "invalid SQL returns error",
			sql:     "CREATE TABEL broken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts, err := parser.Statements(tt.sql)

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, stmts, tt.wantCount)
		})
	}
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sql     string
		want    []string
		wantErr bool
	}{
		{
			name: "single statement keeps its text",
			sql:  "CREATE TABLE tasks (id UUID PRIMARY KEY)",
			want: []string{"CREATE TABLE tasks (id UUID PRIMARY KEY)"},
		},
		{
			name: "multiple statements split at boundaries",
			sql:  "CREATE TABLE a (id INT);\nCREATE INDEX CONCURRENTLY idx_a ON a (id);",
			want: []string{
				"CREATE TABLE a (id INT)",
				"CREATE INDEX CONCURRENTLY idx_a ON a (id)",
			},
		},
		{
			name: "surrounding whitespace stripped per statement",
			sql:  "  SELECT 1;\n\n  SELECT 2;  ",
			want: []string{"SELECT 1", "SELECT 2"},
		},
		{
			name: "empty input",
			sql:  "",
			want: nil,
		},
		{
			name:    "invalid SQL returns error",
			sql:     "CREATE TABEL broken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts, err := parser.SplitStatements(tt.sql)

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stmts)
		})
	}
}
