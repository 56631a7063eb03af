package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DatabaseURLVar is the connection variable every lifecycle command needs.
const DatabaseURLVar = "DATABASE_URL"

// DotenvDirVar points at the directory holding the .env / .env.test files
// when they are not at the project root, e.g. when mounted separately in a
// container.
const DotenvDirVar = "APP_DOTENV_DIR"

// Resolve fills cfg.DatabaseURL from the sources that apply to the
// environment:
//
//   - Development loads .env if present, Test loads .env.test if present.
//     Variables already set in the process environment are never overridden
//     by file values.
//   - Production reads no file; DATABASE_URL must already be set.
//
// If DATABASE_URL is still empty afterwards, ErrMissingConfiguration is
// returned. Resolve never writes a file.
func Resolve(cfg *Config) error {
	if err := loadDotenv(cfg.Environment); err != nil {
		return err
	}

	url := os.Getenv(DatabaseURLVar)
	if url == "" {
		return fmt.Errorf("%w: %s is not set (environment %s)",
			ErrMissingConfiguration, DatabaseURLVar, cfg.Environment)
	}

	cfg.DatabaseURL = url

	return nil
}

// loadDotenv applies the environment's dotfile, if any, as defaults.
// A missing dotfile is not an error; the dotfile is optional.
func loadDotenv(env Environment) error {
	var filename string

	switch env {
	case Development:
		filename = ".env"
	case Test:
		filename = ".env.test"
	case Production:
		return nil
	}

	if dir := os.Getenv(DotenvDirVar); dir != "" {
		filename = filepath.Join(dir, filename)
	}

	// godotenv.Load never overrides variables already present in the
	// process environment, which is exactly the precedence we want.
	err := godotenv.Load(filename)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading %s: %w", filename, err)
	}

	return nil
}
