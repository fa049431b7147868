package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskline/internal/model"
	"taskline/internal/parser"
	"taskline/internal/validate"
)

// add flags.
var (
	addFlagDate        string
	addFlagRepeats     string
	addFlagDescription string
)

// addCmd adds a new task.
var addCmd = &cobra.Command{
	Use:     "add NAME...",
	Aliases: []string{"new"},
	Short:   "Add a task",
	Long: `Add a task to the list. The date defaults to today.

Examples:
  taskline add 'water plants'
  taskline add pay rent --date 2024-04-01 --repeats Monthly
  taskline add standup --repeats Mon,Tue,Wed,Thu,Fri --description 'https://example.com/meet'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagDate, "date", "d", "",
		"Task date (YYYY-MM-DD or natural language, default today)")
	addCmd.Flags().StringVarP(&addFlagRepeats, "repeats", "r", "",
		"Repeat rule: Never, Daily, Weekly, Monthly, Yearly, or weekday names")
	addCmd.Flags().StringVar(&addFlagDescription, "description", "",
		"Free-text description (a URL can be opened from the interactive interface)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	// Parse and validate everything before touching the collection.
	if err := validate.TaskName(name); err != nil {
		return err
	}
	if err := validate.Description(addFlagDescription); err != nil {
		return err
	}
	date, err := parser.ParseDate(addFlagDate)
	if err != nil {
		return err
	}
	repeats, err := parser.ParseRepeat(addFlagRepeats)
	if err != nil {
		return err
	}

	task := model.NewTask()
	task.SetName(name)
	task.SetDate(date)
	task.SetRepeats(repeats)
	task.SetDescription(addFlagDescription)

	id := ctx.Collection.Add(task)
	if err := ctx.Collection.Save(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTask("added", task, nil)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Added task %d: %s", id, name))
	return nil
}
