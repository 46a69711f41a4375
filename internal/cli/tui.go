package cli

import (
	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Build a scenario interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Launch()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
