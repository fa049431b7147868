package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rmCmd deletes a task.
var rmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a task",
	Long: `Delete a task permanently. Its identifier is never reused.

Examples:
  taskline rm 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Look up first so the user learns about a stale identifier;
	// Delete itself is a silent no-op on missing ids.
	task, err := ctx.Collection.Get(id)
	if err != nil {
		return err
	}

	ctx.Collection.Delete(id)
	if err := ctx.Collection.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask("deleted", task, nil)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted task %d: %s", id, task.Name))
	return nil
}
