// Package cli implements the bts command tree.
package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/btslang/bts/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:          "bts",
	Short:        "Compile and manage browser test scenario scripts",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if cfg.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
