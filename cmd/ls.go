package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"taskline/internal/errors"
	"taskline/internal/model"
	"taskline/internal/output"
)

// ls flags.
var (
	lsFlagShowCompleted bool
	lsFlagFilter        string
)

// lsCmd lists tasks grouped by day.
var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long: `List tasks grouped by day. Completed tasks are hidden unless
--show-completed is given.

Examples:
  taskline ls
  taskline ls --show-completed
  taskline ls --filter today
  taskline ls -f json`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVarP(&lsFlagShowCompleted, "show-completed", "s", false,
		"Include completed tasks")
	lsCmd.Flags().StringVar(&lsFlagFilter, "filter", "all",
		"Filter: all, today")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	var groups [][]*model.Task
	switch lsFlagFilter {
	case "", "all":
		groups = ctx.Collection.GroupByDay()
	case "today":
		if today := ctx.Collection.OnDay(time.Now()); len(today) > 0 {
			groups = [][]*model.Task{today}
		}
	default:
		return errors.NewUserErrorWithField("filter", lsFlagFilter,
			"Unknown filter", "Use 'all' or 'today'")
	}

	switch ctx.Formatter.Format {
	case output.FormatJSON:
		return ctx.JSONFormatter().PrintTasks(flatten(groups, lsFlagShowCompleted))
	case output.FormatPlain:
		ctx.CLIFormatter().PrintTasksPlain(flatten(groups, lsFlagShowCompleted))
		return nil
	default:
		ctx.CLIFormatter().PrintTaskGroups(groups, ctx.Settings, lsFlagShowCompleted)
		return nil
	}
}

// flatten joins groups into a single list, dropping completed tasks
// unless they are shown.
func flatten(groups [][]*model.Task, showCompleted bool) []*model.Task {
	var out []*model.Task
	for _, group := range groups {
		for _, t := range group {
			if !showCompleted && t.Complete {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}
