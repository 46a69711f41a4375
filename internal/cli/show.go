package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/catalog"
	"github.com/btslang/bts/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a cataloged scenario with its steps and source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShow(cmd.OutOrStdout(), cfg.DBPath, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// RunShow prints one scenario: metadata, planned steps, and the stored
// script source.
func RunShow(w io.Writer, dbPath, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scenario ID: %s", rawID)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `bts init` first")
	}

	db, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	d, err := catalog.GetScenario(db, id)
	if err != nil {
		return err
	}

	output.ShowHeader(w, d.ID, d.Name, d.File)
	output.MetaLine(w, "priority", d.Priority)
	if len(d.Tags) > 0 {
		output.MetaLine(w, "tags", strings.Join(d.Tags, ", "))
	}
	if d.StartURL != "" {
		output.MetaLine(w, "url", d.StartURL)
	}
	if d.Description != "" {
		output.MetaLine(w, "about", d.Description)
	}

	fmt.Fprintln(w)
	for _, s := range d.Steps {
		output.StepLine(w, s.Idx, s.Description, s.Summary)
	}

	fmt.Fprintln(w)
	output.SourceBlock(w, d.Script)
	return nil
}
