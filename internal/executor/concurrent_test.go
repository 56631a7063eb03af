package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsConcurrentIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sql     string
		want    bool
		wantErr bool
	}{
		{
			name: "concurrent index detected",
			sql:  "CREATE INDEX CONCURRENTLY idx_tasks_title ON tasks (title);",
			want: true,
		},
		{
			name: "regular index not flagged",
			sql:  "CREATE INDEX idx_tasks_title ON tasks (title);",
			want: false,
		},
		{
			name: "concurrent index among other statements",
			sql:  "ALTER TABLE tasks ADD COLUMN done BOOLEAN; CREATE INDEX CONCURRENTLY idx_done ON tasks (done);",
			want: true,
		},
		{
			name: "non-DDL statements",
			sql:  "INSERT INTO tasks (id) VALUES (gen_random_uuid());",
			want: false,
		},
		{
			name: "empty SQL",
			sql:  "",
			want: false,
		},
		{
			name:    "invalid SQL returns error",
			sql:     "CREATE INDEKS broken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := containsConcurrentIndex(tt.sql)

			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
