package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a scenario script and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunParse(cmd.OutOrStdout(), args[0], parseJSON)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the machine-readable result")
	rootCmd.AddCommand(parseCmd)
}

// RunParse parses one script and prints the result. Parse problems are
// part of the printed result, not a command failure; validate is the
// command that turns them into an exit code.
func RunParse(w io.Writer, path string, jsonOut bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	res := parser.Parse(string(data))
	if jsonOut {
		out, err := output.FormatResult(res)
		if err != nil {
			return fmt.Errorf("formatting result: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	output.RenderResult(w, res)
	return nil
}
