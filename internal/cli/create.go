package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/database"
)

var createCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "create",
	Short: "Create the environment's database",
	Long: `Create the target database by connecting to the server-level
maintenance database. An already-existing database is reported as a
warning unless --strict is set.`,
	RunE: runCreate,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	createCmd.Flags().Bool("strict", false, "treat an already-existing database as a fatal error")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
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

	if err := database.Create(ctx, pool, dbName); err != nil {
		if errors.Is(err, database.ErrDatabaseExists) && !strict {
			fmt.Fprintf(out, "Warning: %v\n", err)

			return nil
		}

		return err
	}

	fmt.Fprintf(out, "Created database %s.\n", dbName)

	return nil
}
