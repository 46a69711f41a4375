package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
	"github.com/btslang/bts/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-parse scripts as they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return RunWatch(ctx, cmd.OutOrStdout(), cfg.ScriptsDir)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// RunWatch blocks, printing a one-line parse summary for every script
// change under dir, until ctx is canceled.
func RunWatch(ctx context.Context, w io.Writer, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("run `bts init` first")
	}

	return watch.Run(ctx, dir, func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("reading changed file", "path", path, "err", err)
			return
		}

		res := parser.Parse(string(data))
		if len(res.Errors) > 0 {
			e := res.Errors[0]
			output.ErrLine(w, path, fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message))
			return
		}

		detail := fmt.Sprintf("%d steps", len(res.Scenario.Steps))
		if n := len(res.Warnings); n > 0 {
			detail += fmt.Sprintf(", %d warnings", n)
		}
		output.OkFileLine(w, path, detail)
	})
}
