package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/catalog"
	"github.com/btslang/bts/internal/output"
)

var listPriority string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cataloged scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), cfg.DBPath, listPriority)
	},
}

func init() {
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority")
	rootCmd.AddCommand(listCmd)
}

// RunList prints one line per cataloged scenario, optionally filtered by
// priority.
func RunList(w io.Writer, dbPath, priorityFilter string) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `bts init` first")
	}

	db, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := catalog.ListScenarios(db)
	if err != nil {
		return err
	}

	var results []catalog.ScenarioRow
	for _, r := range rows {
		if priorityFilter != "" && r.Priority != priorityFilter {
			continue
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return nil
	}

	nameWidth, fileWidth := 0, 0
	for _, r := range results {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if len(r.File) > fileWidth {
			fileWidth = len(r.File)
		}
	}

	for _, r := range results {
		output.ListRow(w, r.ID, r.Name, r.File, r.Priority, r.Steps, r.Errors, nameWidth, fileWidth)
	}
	return nil
}
