package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/database"
)

var dropCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "drop",
	Short: "Drop the environment's database",
	Long: `Drop the target database, terminating any active connections
first. A missing database is reported as a warning unless --strict is set.`,
	RunE: runDrop,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	dropCmd.Flags().Bool("strict", false, "treat a missing database as a fatal error")
	rootCmd.AddCommand(dropCmd)
}

func runDrop(cmd *cobra.Command, _ []string) error {
	cfg := AppConfig

	if err := resolveDatabaseURL(cfg); err != nil {
		return err
	}

	strict, _ := cmd.Flags().GetBool("strict")
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	pool, dbName, err := connectServer(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Drop(ctx, pool, dbName); err != nil {
		if errors.Is(err, database.ErrDatabaseNotFound) && !strict {
			fmt.Fprintf(out, "Warning: %v\n", err)

			return nil
		}

		return err
	}

	fmt.Fprintf(out, "Dropped database %s.\n", dbName)

	return nil
}
