package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamiAli24/taskdb/internal/config"
)

// unsetDatabaseURL clears DATABASE_URL for the test while registering the
// original value for restoration.
func unsetDatabaseURL(t *testing.T) {
	t.Helper()
	t.Setenv(config.DatabaseURLVar, "")
	require.NoError(t, os.Unsetenv(config.DatabaseURLVar))
}

func writeDotenv(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func TestResolve_development_appliesDotfileValue(t *testing.T) {
	dir := writeDotenv(t, map[string]string{
		".env": "DATABASE_URL=postgres://localhost:5432/tasks_development\n",
	})
	t.Setenv(config.DotenvDirVar, dir)
	unsetDatabaseURL(t)

	cfg := config.New(config.Development)

	require.NoError(t, config.Resolve(cfg))
	assert.Equal(t, "postgres://localhost:5432/tasks_development", cfg.DatabaseURL)
}

func TestResolve_development_processEnvWinsOverDotfile(t *testing.T) {
	dir := writeDotenv(t, map[string]string{
		".env": "DATABASE_URL=postgres://localhost:5432/from_file\n",
	})
	t.Setenv(config.DotenvDirVar, dir)
	t.Setenv(config.DatabaseURLVar, "postgres://localhost:5432/from_process")

	cfg := config.New(config.Development)

	require.NoError(t, config.Resolve(cfg))
	assert.Equal(t, "postgres://localhost:5432/from_process", cfg.DatabaseURL)
}

func TestResolve_test_readsEnvTestDotfile(t *testing.T) {
	dir := writeDotenv(t, map[string]string{
		".env":      "DATABASE_URL=postgres://localhost:5432/tasks_development\n",
		".env.test": "DATABASE_URL=postgres://localhost:5432/tasks_test\n",
	})
	t.Setenv(config.DotenvDirVar, dir)
	unsetDatabaseURL(t)

	cfg := config.New(config.Test)

	require.NoError(t, config.Resolve(cfg))
	assert.Equal(t, "postgres://localhost:5432/tasks_test", cfg.DatabaseURL)
}

func TestResolve_test_processEnvWinsOverDotfile(t *testing.T) {
	dir := writeDotenv(t, map[string]string{
		".env.test": "DATABASE_URL=postgres://localhost:5432/from_file\n",
	})
	t.Setenv(config.DotenvDirVar, dir)
	t.Setenv(config.DatabaseURLVar, "postgres://localhost:5432/from_process")

	cfg := config.New(config.Test)

	require.NoError(t, config.Resolve(cfg))
	assert.Equal(t, "postgres://localhost:5432/from_process", cfg.DatabaseURL)
}

func TestResolve_production_ignoresDotfile(t *testing.T) {
	dir := writeDotenv(t, map[string]string{
		".env": "DATABASE_URL=postgres://localhost:5432/from_file\n",
	})
	t.Setenv(config.DotenvDirVar, dir)
	unsetDatabaseURL(t)

	cfg := config.New(config.Production)

	err := config.Resolve(cfg)
	require.ErrorIs(t, err, config.ErrMissingConfiguration)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestResolve_production_usesProcessEnv(t *testing.T) {
	t.Setenv(config.DatabaseURLVar, "postgres://prod-host:5432/tasks")

	cfg := config.New(config.Production)

	require.NoError(t, config.Resolve(cfg))
	assert.Equal(t, "postgres://prod-host:5432/tasks", cfg.DatabaseURL)
}

func TestResolve_missingDotfileAndVariable_returnsMissingConfiguration(t *testing.T) {
	t.Setenv(config.DotenvDirVar, t.TempDir())
	unsetDatabaseURL(t)

	cfg := config.New(config.Development)

	err := config.Resolve(cfg)
	require.ErrorIs(t, err, config.ErrMissingConfiguration)
}
