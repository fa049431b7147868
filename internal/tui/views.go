package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskline/internal/validate"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.page {
	case pageNewTask, pageEditTask:
		return a.viewForm()
	default:
		return a.viewTasks()
	}
}

// viewTasks renders the grouped task list with an optional details pane.
func (a *App) viewTasks() string {
	var rows []string

	idx := 0
	for _, group := range a.tasks.GroupByDay() {
		header := StyleGroupTitle.Render(strings.ToUpper(group[0].Date.Format(a.settings.DateFormat)))
		var lines []string

		for _, task := range group {
			if task.Complete && !a.showCompleted {
				idx++
				continue
			}

			line := fmt.Sprintf("%s %s", a.settings.CompleteIcon(task.Complete), task.Name)
			if icon := a.settings.RepeatsIcon(task.Repeats); icon != "" {
				line += " " + icon
			}

			switch {
			case idx == a.cursor:
				line = StyleSelected.Render("> " + line)
			case task.Complete:
				line = StyleDone.Render("  " + line)
			default:
				line = "  " + line
			}
			lines = append(lines, line)
			idx++
		}

		// Suppress groups whose tasks are all hidden
		if len(lines) == 0 {
			continue
		}
		rows = append(rows, header)
		rows = append(rows, lines...)
		rows = append(rows, "")
	}

	if len(rows) == 0 {
		rows = append(rows, StyleDone.Render("No tasks. Press 'n' to add one."))
	}

	list := StyleBox.Width(a.width - 2).Render(strings.Join(rows, "\n"))

	sections := []string{list}
	if details := a.viewDetails(); details != "" {
		sections = append(sections, details)
	}
	if a.err != nil {
		sections = append(sections, StyleError.Render("Error: "+a.err.Error()))
	}
	sections = append(sections, a.helpTasks())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewDetails renders the selected task's details pane.
func (a *App) viewDetails() string {
	task := a.selectedTask()
	if task == nil {
		return ""
	}

	var lines []string
	lines = append(lines, "Date: "+task.Date.Format(a.settings.DateFormat))
	if !task.Repeats.IsNever() {
		lines = append(lines, "Repeats: "+task.Repeats.String())
	}
	if task.Description != "" {
		desc := "Description: " + task.Description
		if validate.IsHyperlink(task.Description) {
			desc += StyleHelp.Render("  (enter to open)")
		}
		lines = append(lines, desc)
	}

	return StyleBox.Width(a.width - 2).Render(strings.Join(lines, "\n"))
}

// viewForm renders the new/edit task form.
func (a *App) viewForm() string {
	title := "New Task"
	if a.page == pageEditTask {
		title = "Edit Task"
	}

	sections := []string{StyleGroupTitle.Render(title)}

	for i := 0; i < numFields; i++ {
		label := StyleFieldLabel.Render(fieldLabels[i])
		value := a.form.fields[i]
		if i == a.form.focus && a.form.editing {
			value += "█"
		}

		box := StyleFieldBox
		if i == a.form.focus {
			box = StyleFieldBoxActive
		}
		sections = append(sections, label, box.Width(a.width-2).Render(value))
	}

	if a.form.errText != "" {
		sections = append(sections, StyleError.Render("Error: "+a.form.errText))
	}
	sections = append(sections, a.helpForm())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// helpTasks renders the task list key bindings.
func (a *App) helpTasks() string {
	show := "show"
	if a.showCompleted {
		show = "hide"
	}
	return StyleHelp.Render(fmt.Sprintf(
		"j/k move   x toggle   d delete   h %s completed   n new   e edit   enter open link   q quit", show))
}

// helpForm renders the form key bindings.
func (a *App) helpForm() string {
	if a.form.editing {
		return StyleHelp.Render("esc stop editing")
	}
	return StyleHelp.Render("j/k field   i edit field   enter submit   b back   q quit")
}
