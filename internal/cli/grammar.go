package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/grammar"
)

var grammarJSON bool

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the scenario language reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGrammar(cmd.OutOrStdout(), grammarJSON)
	},
}

func init() {
	grammarCmd.Flags().BoolVar(&grammarJSON, "json", false, "Print the grammar snapshot as JSON")
	rootCmd.AddCommand(grammarCmd)
}

// RunGrammar prints the language reference, or the snapshot JSON that
// pins the keyword surface.
func RunGrammar(w io.Writer, jsonOut bool) error {
	if jsonOut {
		data, err := grammar.GetSnapshotJSON()
		if err != nil {
			return fmt.Errorf("building grammar snapshot: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprint(w, grammar.FormatHelp())
	return nil
}
