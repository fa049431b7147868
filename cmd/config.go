package cmd

import (
	"github.com/spf13/cobra"

	"taskline/internal/errors"
)

// config flags.
var (
	configFlagDateFormat     string
	configFlagCompleteIcon   string
	configFlagIncompleteIcon string
	configFlagRepeatsIcon    string
	configFlagShowCompleted  string
)

// configCmd views or updates display settings.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update display settings",
	Long: `View the current display settings, or update them with flags.

Examples:
  taskline config
  taskline config --date-format 'Mon Jan 2'
  taskline config --complete-icon '✓' --incomplete-icon '·'
  taskline config --show-completed true`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configFlagDateFormat, "date-format", "",
		"Date display layout (Go reference time, e.g. 'Mon Jan 2, 2006')")
	configCmd.Flags().StringVar(&configFlagCompleteIcon, "complete-icon", "",
		"Icon for completed tasks")
	configCmd.Flags().StringVar(&configFlagIncompleteIcon, "incomplete-icon", "",
		"Icon for incomplete tasks")
	configCmd.Flags().StringVar(&configFlagRepeatsIcon, "repeats-icon", "",
		"Icon marking recurring tasks")
	configCmd.Flags().StringVar(&configFlagShowCompleted, "show-completed", "",
		"Show completed tasks by default: true, false")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	settings := ctx.Settings
	changed := false

	if cmd.Flags().Changed("date-format") {
		settings.DateFormat = configFlagDateFormat
		changed = true
	}
	if cmd.Flags().Changed("complete-icon") {
		settings.Icons.Complete = configFlagCompleteIcon
		changed = true
	}
	if cmd.Flags().Changed("incomplete-icon") {
		settings.Icons.Incomplete = configFlagIncompleteIcon
		changed = true
	}
	if cmd.Flags().Changed("repeats-icon") {
		settings.Icons.Repeats = configFlagRepeatsIcon
		changed = true
	}
	if cmd.Flags().Changed("show-completed") {
		switch configFlagShowCompleted {
		case "true":
			settings.ShowComplete = true
		case "false":
			settings.ShowComplete = false
		default:
			return errors.NewUserErrorWithField("show-completed", configFlagShowCompleted,
				"Invalid value", "Use 'true' or 'false'")
		}
		changed = true
	}

	if changed {
		if err := ctx.SettingsRepo.Update(settings); err != nil {
			return err
		}
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}

	cli := ctx.CLIFormatter()
	cli.Printf("date-format:     %s\n", settings.DateFormat)
	cli.Printf("complete-icon:   %s\n", settings.Icons.Complete)
	cli.Printf("incomplete-icon: %s\n", settings.Icons.Incomplete)
	cli.Printf("repeats-icon:    %s\n", settings.Icons.Repeats)
	cli.Printf("show-completed:  %t\n", settings.ShowComplete)
	return nil
}
