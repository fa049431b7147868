package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskline/internal/errors"
	"taskline/internal/model"
)

// doneCmd toggles the completion state of a task.
var doneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"toggle", "x"},
	Short:   "Toggle a task's completion state",
	Long: `Mark a task complete, or back to incomplete if it already is.
Completing a recurring task schedules its next occurrence as a new task.

Examples:
  taskline done 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

// parseID parses a task identifier argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewUserErrorWithField("id", arg,
			"Invalid task identifier", "Use 'taskline ls' to see task identifiers")
	}
	return id, nil
}

func runDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	lenBefore := ctx.Collection.Len()
	if err := ctx.Collection.ToggleComplete(id); err != nil {
		return err
	}
	if err := ctx.Collection.Save(); err != nil {
		return err
	}

	task, err := ctx.Collection.Get(id)
	if err != nil {
		return err
	}

	var successor *model.Task
	if ctx.Collection.Len() > lenBefore {
		successor = ctx.Collection.Tasks()[ctx.Collection.Len()-1]
	}

	if ctx.IsJSON() {
		status := "incomplete"
		if task.Complete {
			status = "completed"
		}
		return ctx.JSONFormatter().PrintTask(status, task, successor)
	}

	cli := ctx.CLIFormatter()
	if task.Complete {
		cli.Success(fmt.Sprintf("Completed task %d: %s", id, task.Name))
		if successor != nil {
			cli.Muted(fmt.Sprintf("  next occurrence %d on %s",
				successor.MustID(), successor.Date.Format(ctx.Settings.DateFormat)))
		}
	} else {
		cli.Success(fmt.Sprintf("Reopened task %d: %s", id, task.Name))
	}
	return nil
}
