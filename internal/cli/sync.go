package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/catalog"
	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Parse every script in the scripts directory into the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSync(cmd.OutOrStdout(), cfg.ScriptsDir, cfg.DBPath)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// RunSync parses every .bts file under dir into the catalog, printing a
// status line per file and a summary.
func RunSync(w io.Writer, dir, dbPath string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("run `bts init` first")
	}

	db, err := catalog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	matches, err := filepath.Glob(filepath.Join(dir, "*.bts"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(matches)

	files, scenarios := 0, 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		res := parser.Parse(string(data))
		out, err := catalog.SyncFile(db, path, string(data), res)
		if err != nil {
			return fmt.Errorf("syncing %s: %w", path, err)
		}
		slog.Debug("synced file", "path", path, "errors", out.ErrorCount)

		switch {
		case out.ErrorCount > 0:
			output.ErrLine(w, path, out.LastError)
		case out.Created:
			output.NewFileLine(w, path)
		default:
			output.UpdLine(w, path)
		}
		files++
		scenarios += out.Scenarios
	}

	output.SyncSummaryLine(w, files, scenarios)
	return nil
}
