package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"taskline/internal/model"
	"taskline/internal/parser"
	"taskline/internal/validate"
)

// edit flags.
var (
	editFlagName        string
	editFlagDate        string
	editFlagRepeats     string
	editFlagDescription string
)

// editCmd updates fields of an existing task.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Long: `Update fields of an existing task. Only the given flags change;
a parse failure leaves the task untouched.

Examples:
  taskline edit 3 --name 'water all plants'
  taskline edit 3 --date tomorrow --repeats Weekly`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagName, "name", "n", "", "Update the name")
	editCmd.Flags().StringVarP(&editFlagDate, "date", "d", "", "Update the date")
	editCmd.Flags().StringVarP(&editFlagRepeats, "repeats", "r", "", "Update the repeat rule")
	editCmd.Flags().StringVar(&editFlagDescription, "description", "", "Update the description")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	task, err := ctx.Collection.Get(id)
	if err != nil {
		return err
	}

	// Parse every flag before mutating anything.
	var date time.Time
	if cmd.Flags().Changed("date") {
		if date, err = parser.ParseDate(editFlagDate); err != nil {
			return err
		}
	}
	var repeats model.Repeat
	if cmd.Flags().Changed("repeats") {
		if repeats, err = parser.ParseRepeat(editFlagRepeats); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("name") {
		if err := validate.TaskName(editFlagName); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("description") {
		if err := validate.Description(editFlagDescription); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("name") {
		task.SetName(editFlagName)
	}
	if cmd.Flags().Changed("date") {
		task.SetDate(date)
	}
	if cmd.Flags().Changed("repeats") {
		task.SetRepeats(repeats)
	}
	if cmd.Flags().Changed("description") {
		task.SetDescription(editFlagDescription)
	}

	if err := ctx.Collection.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask("updated", task, nil)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Updated task %d: %s", id, task.Name))
	return nil
}
