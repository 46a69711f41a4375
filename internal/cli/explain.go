package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/output"
	"github.com/btslang/bts/internal/parser"
	"github.com/btslang/bts/internal/planner"
)

var explainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Print the execution plan for a script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunExplain(cmd.OutOrStdout(), args[0], explainJSON)
	},
}

func init() {
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "Print the machine-readable plan")
	rootCmd.AddCommand(explainCmd)
}

// RunExplain parses one script and prints its execution plan. A script
// that produces no scenario cannot be planned and fails the command.
func RunExplain(w io.Writer, path string, jsonOut bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	res := parser.Parse(string(data))
	if res.Scenario == nil {
		if len(res.Errors) > 0 {
			e := res.Errors[0]
			return fmt.Errorf("%s does not parse: %d:%d %s", path, e.Line, e.Column, e.Message)
		}
		return fmt.Errorf("%s does not parse", path)
	}

	plan, err := planner.Plan(res.Scenario)
	if err != nil {
		return fmt.Errorf("planning %s: %w", path, err)
	}

	if jsonOut {
		out, err := output.FormatPlan(plan)
		if err != nil {
			return fmt.Errorf("formatting plan: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	output.RenderPlan(w, plan)
	return nil
}
