package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/config"
)

const version = "0.1.0"

// AppConfig holds the loaded configuration, set during PersistentPreRunE.
var AppConfig *config.Config //nolint:gochecknoglobals // standard Cobra pattern for shared config

// rootCmd is the base command for the db CLI.
var rootCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:     "db",
	Version: version,
	Short:   "Database lifecycle commands for the task service",
	Long: `db manages the task service's PostgreSQL database across
environments: create and drop the database, apply pending schema
migrations with checksum tracking, reset, and load seed data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	rootCmd.PersistentFlags().StringP("environment", "e", "",
		"environment to run against (development, test, production)")
	rootCmd.PersistentFlags().String("config", "db.yml", "path to project configuration file")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection string")
	rootCmd.PersistentFlags().String("migrations-dir", "", "path to migration files")
	rootCmd.PersistentFlags().String("seed-file", "", "path to the seed script")
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the environment, loads the project configuration, and
// applies the environment's dotfile. Precedence: flag > env > file.
func loadConfig(cmd *cobra.Command) error {
	env, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	allowMissing := !cmd.Flags().Changed("config")

	cfg, err := config.Load(env, configPath, allowMissing)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	config.MergeEnv(cfg)
	mergeFlags(cmd, cfg)

	AppConfig = cfg

	return nil
}

// resolveEnvironment picks the environment from the -e flag when set, and
// from APP_ENVIRONMENT (default development) otherwise.
func resolveEnvironment(cmd *cobra.Command) (config.Environment, error) {
	if cmd.Flags().Changed("environment") {
		raw, _ := cmd.Flags().GetString("environment")

		return config.ParseEnvironment(raw)
	}

	return config.CurrentEnvironment()
}

// mergeFlags overrides config with explicitly-set CLI flags.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL, _ = cmd.Flags().GetString("database-url")
	}

	if cmd.Flags().Changed("migrations-dir") {
		cfg.MigrationsDir, _ = cmd.Flags().GetString("migrations-dir")
	}

	if cmd.Flags().Changed("seed-file") {
		cfg.SeedFile, _ = cmd.Flags().GetString("seed-file")
	}
}

// resolveDatabaseURL fills cfg.DatabaseURL from the environment's sources
// unless a --database-url flag already set it. Called by each verb before
// any connection attempt.
func resolveDatabaseURL(cfg *config.Config) error {
	if cfg.DatabaseURL != "" {
		return nil
	}

	return config.Resolve(cfg)
}
