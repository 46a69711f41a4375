package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/catalog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunStatus(cmd.OutOrStdout(), cfg.DBPath)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// RunStatus prints catalog-wide counts with a per-priority breakdown.
func RunStatus(w io.Writer, dbPath string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `bts init` first")
	}

	db, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	r, err := catalog.Status(db)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Files: %d\n", r.Files)
	if r.ErrorFiles > 0 {
		fmt.Fprintf(w, "Files with errors: %d\n", r.ErrorFiles)
	}
	fmt.Fprintf(w, "Scenarios: %d\n", r.Scenarios)
	fmt.Fprintf(w, "Steps: %d\n", r.Steps)
	for _, pc := range r.Priorities {
		fmt.Fprintf(w, "  %s: %d\n", pc.Priority, pc.Count)
	}
	return nil
}
