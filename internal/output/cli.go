package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskline/internal/model"
)

// Styles for CLI output.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	styleGroupTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleDone = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// taskLine renders a single task row.
func (c *CLIFormatter) taskLine(t *model.Task, settings *model.Settings) string {
	line := fmt.Sprintf("%4d  %s %s", t.MustID(), settings.CompleteIcon(t.Complete), t.Name)
	if icon := settings.RepeatsIcon(t.Repeats); icon != "" {
		line += " " + icon
	}
	if t.Complete && c.IsColorEnabled() {
		return styleDone.Render(line)
	}
	return line
}

// PrintTaskGroups prints tasks grouped by day with a header per group.
// Groups whose tasks are all filtered out are suppressed.
func (c *CLIFormatter) PrintTaskGroups(groups [][]*model.Task, settings *model.Settings, showCompleted bool) {
	printed := 0
	for _, group := range groups {
		var lines []string
		for _, t := range group {
			if !showCompleted && t.Complete {
				continue
			}
			lines = append(lines, c.taskLine(t, settings))
		}
		if len(lines) == 0 {
			continue
		}

		title := strings.ToUpper(group[0].Date.Format(settings.DateFormat))
		if c.IsColorEnabled() {
			title = styleGroupTitle.Render(title)
		}
		c.Println(title)
		for _, line := range lines {
			c.Println(line)
		}
		c.Println()
		printed++
	}

	if printed == 0 {
		c.Muted("No tasks.")
	}
}

// PrintTask prints the details of a single task.
func (c *CLIFormatter) PrintTask(t *model.Task, settings *model.Settings) {
	c.Println(c.taskLine(t, settings))
	c.Printf("      Date: %s\n", t.Date.Format(settings.DateFormat))
	if !t.Repeats.IsNever() {
		c.Printf("      Repeats: %s\n", t.Repeats.String())
	}
	if t.Description != "" {
		c.Printf("      Description: %s\n", t.Description)
	}
}

// PrintTasksPlain prints tasks in a tab-separated, script-friendly form.
func (c *CLIFormatter) PrintTasksPlain(tasks []*model.Task) {
	for _, t := range tasks {
		state := "incomplete"
		if t.Complete {
			state = "complete"
		}
		c.Printf("%d\t%s\t%s\t%s\t%s\n",
			t.MustID(), state, t.Date.Format("2006-01-02"), t.Repeats.String(), t.Name)
	}
}
