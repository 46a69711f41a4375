package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check scenario scripts and exit nonzero on errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunValidate(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// RunValidate parses every file and prints one line each. A file passes
// only when it parses with zero errors; warnings are reported but do not
// fail the file.
func RunValidate(w io.Writer, paths []string) error {
	failed := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		res := parser.Parse(string(data))
		if res.Success && len(res.Errors) == 0 {
			detail := fmt.Sprintf("%d steps", len(res.Scenario.Steps))
			if n := len(res.Warnings); n > 0 {
				detail += fmt.Sprintf(", %d warnings", n)
			}
			output.OkFileLine(w, path, detail)
			continue
		}

		failed++
		detail := "no scenario"
		if len(res.Errors) > 0 {
			e := res.Errors[0]
			detail = fmt.Sprintf("%d:%d %s", e.Line, e.Column, e.Message)
		}
		output.FailFileLine(w, path, detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
