package cmd

import (
	"github.com/spf13/cobra"
)

// showCmd shows the details of a single task.
var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a task's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	task, err := ctx.Collection.Get(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask("ok", task, nil)
	}
	ctx.CLIFormatter().PrintTask(task, ctx.Settings)
	return nil
}
