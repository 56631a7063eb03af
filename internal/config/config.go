package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for configuration fields.
const (
	DefaultMigrationsDir    = "./db/migrations"
	DefaultSeedFile         = "./db/seed.sql"
	DefaultLockTimeout      = 5 * time.Second
	DefaultStatementTimeout = 30 * time.Second
)

// Config holds everything a lifecycle command needs: the resolved
// environment, the connection URL, and file locations. It is built once
// per invocation and passed explicitly; nothing here is process-global.
type Config struct {
	Environment      Environment
	DatabaseURL      string
	MigrationsDir    string
	SeedFile         string
	LockTimeout      time.Duration
	StatementTimeout time.Duration
}

// yamlConfig is the raw db.yml representation with string durations.
type yamlConfig struct {
	MigrationsDir    string `yaml:"migrations_dir"`
	SeedFile         string `yaml:"seed_file"`
	LockTimeout      string `yaml:"lock_timeout"`
	StatementTimeout string `yaml:"statement_timeout"`
}

// New returns a Config populated with default values for the given
// environment. The database URL is left empty; Resolve fills it in.
func New(env Environment) *Config {
	return &Config{
		Environment:      env,
		MigrationsDir:    DefaultMigrationsDir,
		SeedFile:         DefaultSeedFile,
		LockTimeout:      DefaultLockTimeout,
		StatementTimeout: DefaultStatementTimeout,
	}
}

// Load reads the project configuration file (db.yml) and returns a Config.
// If allowMissing is true and the file does not exist, defaults are returned.
func Load(env Environment, path string, allowMissing bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && allowMissing {
			return New(env), nil
		}

		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return fromYAML(env, &raw)
}

// fromYAML converts the raw YAML representation to a Config with defaults applied.
func fromYAML(env Environment, raw *yamlConfig) (*Config, error) {
	cfg := New(env)

	if raw.MigrationsDir != "" {
		cfg.MigrationsDir = raw.MigrationsDir
	}

	if raw.SeedFile != "" {
		cfg.SeedFile = raw.SeedFile
	}

	if raw.LockTimeout != "" {
		d, err := time.ParseDuration(raw.LockTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing lock_timeout %q: %w", raw.LockTimeout, err)
		}

		cfg.LockTimeout = d
	}

	if raw.StatementTimeout != "" {
		d, err := time.ParseDuration(raw.StatementTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing statement_timeout %q: %w", raw.StatementTimeout, err)
		}

		cfg.StatementTimeout = d
	}

	return cfg, nil
}

// MergeEnv overrides config fields from DB_* environment variables.
// The connection URL itself is handled by Resolve, not here.
func MergeEnv(cfg *Config) {
	if v := os.Getenv("DB_MIGRATIONS_DIR"); v != "" {
		cfg.MigrationsDir = v
	}

	if v := os.Getenv("DB_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}

	if v := os.Getenv("DB_LOCK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LockTimeout = d
		}
	}

	if v := os.Getenv("DB_STATEMENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.StatementTimeout = d
		}
	}
}
