package cmd

import (
	"github.com/spf13/cobra"

	"taskline/internal/tui"
)

// uiCmd launches the interactive task view. Running taskline with no
// subcommand does the same thing.
var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Open the interactive task view",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.Config{
			Tasks:         ctx.Collection,
			Settings:      ctx.Settings,
			SettingsStore: ctx.SettingsRepo,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
