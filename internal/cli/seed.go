package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/seed"
)

var seedCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "seed",
	Short: "Run the seed script against the environment's database",
	Long: `Execute the project's seed script as-is against the target
database. Seed runs are not tracked; rerunning safely is the script's
responsibility.`,
	RunE: runSeed,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg := AppConfig

	if err := resolveDatabaseURL(cfg); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	pool, err := connectTarget(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := seed.Run(ctx, pool, cfg.SeedFile); err != nil {
		return err
	}

	fmt.Fprintf(out, "Seeded from %s.\n", cfg.SeedFile)

	return nil
}
