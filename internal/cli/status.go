package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/RamiAli24/taskdb/internal/migration"
	"github.com/RamiAli24/taskdb/internal/tracker"
)

var statusCmd = &cobra.Command{ //nolint:gochecknoglobals // standard Cobra pattern
	Use:   "status",
	Short: "Show applied and pending migrations",
	Long: `Display each migration file's state: applied, pending, or drifted
(applied but the file content changed afterwards). Exits non-zero when
drift is detected.`,
	RunE: runStatus,
}

func init() { //nolint:gochecknoinits // standard Cobra pattern for flag registration
	rootCmd.AddCommand(statusCmd)
}

// statusSummary counts migration files by state. Tracking rows with no
// file on disk are not counted.
type statusSummary struct {
	applied int
	pending int
	drifted int
	ignored int
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg := AppConfig

	if err := resolveDatabaseURL(cfg); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	migrations, err := migration.LoadFromDir(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	pool, err := connectTarget(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer pool.Close()

	t := tracker.New(pool)

	if err := t.EnsureTable(ctx); err != nil {
		return err
	}

	applied, err := t.GetApplied(ctx)
	if err != nil {
		return err
	}

	s := renderStatus(out, migrations, applied)

	fmt.Fprintf(out, "\n%d applied, %d pending, %d drifted.\n", s.applied, s.pending, s.drifted)

	if s.drifted > 0 {
		return fmt.Errorf("%d migration(s): %w", s.drifted, tracker.ErrChecksumMismatch)
	}

	return nil
}

// renderStatus prints one line per migration file and returns the counts.
func renderStatus(out io.Writer, migrations []migration.Migration, applied []tracker.AppliedMigration) statusSummary {
	recorded := make(map[string]string, len(applied))
	for _, a := range applied {
		recorded[a.Version] = a.Checksum
	}

	var maxApplied string

	if len(applied) > 0 {
		maxApplied = applied[len(applied)-1].Version
	}

	var s statusSummary

	for _, m := range migrations {
		checksum, ok := recorded[m.Version]

		switch {
		case ok && checksum == m.Checksum:
			fmt.Fprintf(out, "  applied  %s_%s\n", m.Version, m.Name)
			s.applied++
		case ok:
			fmt.Fprintf(out, "  DRIFTED  %s_%s (recorded %.8s, file %.8s)\n",
				m.Version, m.Name, checksum, m.Checksum)
			s.drifted++
		case len(applied) > 0 && migration.Compare(m.Version, maxApplied) <= 0:
			// At or below the applied watermark without a record: it will
			// never be applied.
			fmt.Fprintf(out, "  ignored  %s_%s (at or below applied version %s)\n",
				m.Version, m.Name, maxApplied)
			s.ignored++
		default:
			fmt.Fprintf(out, "  pending  %s_%s\n", m.Version, m.Name)
			s.pending++
		}
	}

	return s
}
