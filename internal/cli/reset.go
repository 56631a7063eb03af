package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/database"
)

var resetCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "reset",
	Short: "Drop, recreate, and migrate the environment's database",
	Long: `Reset runs drop, create, and migrate in strict sequence. A failure
in an earlier step aborts the later steps. A target that does not exist
yet is tolerated during the drop step.`,
	RunE: runReset,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg := AppConfig

	if err := resolveDatabaseURL(cfg); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	if err := recreateDatabase(cmd, out); err != nil {
		return err
	}

	return applyConfiguredMigrations(ctx, cfg, out)
}

// recreateDatabase performs the drop+create part of reset on a single
// server-level pool.
func recreateDatabase(cmd *cobra.Command, out io.Writer) error {
	ctx := commandContext(cmd)

	pool, dbName, err := connectServer(ctx, AppConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Drop(ctx, pool, dbName); err != nil {
		if !errors.Is(err, database.ErrDatabaseNotFound) {
			return err
		}
	} else {
		fmt.Fprintf(out, "Dropped database %s.\n", dbName)
	}

	if err := database.Create(ctx, pool, dbName); err != nil {
		return err
	}

	fmt.Fprintf(out, "Created database %s.\n", dbName)

	return nil
}
