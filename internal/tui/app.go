package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"taskline/internal/collection"
	"taskline/internal/model"
	"taskline/internal/validate"
)

// page enumerates the interactive screens. The set is closed and
// dispatched exhaustively.
type page int

const (
	pageTasks page = iota
	pageNewTask
	pageEditTask
)

// SettingsStore persists display settings changed from the TUI.
type SettingsStore interface {
	Update(settings *model.Settings) error
}

// Config holds the dependencies for the TUI.
type Config struct {
	Tasks         *collection.Collection
	Settings      *model.Settings
	SettingsStore SettingsStore
}

// App is the bubbletea model for the interactive interface.
type App struct {
	tasks         *collection.Collection
	settings      *model.Settings
	settingsStore SettingsStore

	page          page
	cursor        int // index into the collection, -1 when nothing is selected
	showCompleted bool
	form          taskForm
	editID        uint64

	width  int
	height int
	err    error
}

// NewApp creates the TUI model.
func NewApp(config Config) *App {
	return &App{
		tasks:         config.Tasks,
		settings:      config.Settings,
		settingsStore: config.SettingsStore,
		page:          pageTasks,
		cursor:        -1,
		showCompleted: config.Settings.ShowComplete,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.page {
		case pageTasks:
			return a.updateTasks(msg)
		default:
			return a.updateForm(msg)
		}
	}

	return a, nil
}

// updateTasks handles keys on the task list page.
func (a *App) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if idx, ok := a.tasks.NextVisible(a.cursor, a.showCompleted); ok {
			a.cursor = idx
		}

	case "k", "up":
		if idx, ok := a.tasks.PrevVisible(a.cursor, a.showCompleted); ok {
			a.cursor = idx
		}

	case "x":
		a.toggleSelected()

	case "d":
		a.deleteSelected()

	case "h":
		a.toggleShowCompleted()

	case "enter":
		a.openSelectedLink()

	case "n":
		a.form = newTaskForm()
		a.page = pageNewTask

	case "e":
		if task := a.selectedTask(); task != nil {
			a.form = formFromTask(task)
			a.editID = task.MustID()
			a.page = pageEditTask
		}
	}

	return a, nil
}

// updateForm handles keys on the new/edit task page.
func (a *App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.form.editing {
		switch msg.Type {
		case tea.KeyEsc:
			a.form.editing = false
		case tea.KeyBackspace:
			a.form.backspace()
		case tea.KeyRunes:
			a.form.insert(string(msg.Runes))
		case tea.KeySpace:
			a.form.insert(" ")
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "j", "down":
		a.form.nextField()
	case "k", "up":
		a.form.prevField()
	case "i":
		a.form.editing = true
	case "b", "esc":
		a.page = pageTasks
	case "enter":
		a.submitForm()
	}

	return a, nil
}

// submitForm admits a new task or applies edits, staying on the form
// with an inline error when parsing fails.
func (a *App) submitForm() {
	parsed, err := a.form.submit()
	if err != nil {
		a.form.errText = err.Error()
		return
	}

	if a.page == pageEditTask {
		task, err := a.tasks.Get(a.editID)
		if err != nil {
			a.form.errText = err.Error()
			return
		}
		task.SetName(parsed.Name)
		task.SetDate(parsed.Date)
		task.SetRepeats(parsed.Repeats)
		task.SetDescription(parsed.Description)
	} else {
		a.tasks.Add(parsed)
	}

	a.err = a.tasks.Save()
	a.page = pageTasks
}

// selectedTask returns the task under the cursor, nil when nothing is
// selected.
func (a *App) selectedTask() *model.Task {
	if a.cursor < 0 || a.cursor >= a.tasks.Len() {
		return nil
	}
	return a.tasks.Tasks()[a.cursor]
}

// toggleSelected flips completion of the selected task. When the toggle
// hides the task, the selection recovers to the closest visible one.
func (a *App) toggleSelected() {
	task := a.selectedTask()
	if task == nil {
		return
	}

	if err := a.tasks.ToggleComplete(task.MustID()); err != nil {
		a.err = err
		return
	}
	a.err = a.tasks.Save()

	if !a.showCompleted {
		a.moveClosest()
	}
}

// deleteSelected removes the selected task.
func (a *App) deleteSelected() {
	task := a.selectedTask()
	if task == nil {
		return
	}

	a.tasks.Delete(task.MustID())
	a.err = a.tasks.Save()
	a.moveClosest()
}

// toggleShowCompleted flips the visibility policy and persists it.
func (a *App) toggleShowCompleted() {
	a.showCompleted = !a.showCompleted
	a.settings.ShowComplete = a.showCompleted
	if err := a.settingsStore.Update(a.settings); err != nil {
		a.err = err
	}
	if !a.showCompleted {
		a.moveClosest()
	}
}

// moveClosest recovers the selection after the current item vanished.
func (a *App) moveClosest() {
	idx, ok := a.tasks.ClosestVisible(a.cursor, a.showCompleted)
	if !ok {
		a.cursor = -1
		return
	}
	a.cursor = idx
}

// openSelectedLink opens the selected task's description when it is a
// hyperlink.
func (a *App) openSelectedLink() {
	task := a.selectedTask()
	if task == nil {
		return
	}
	if validate.IsHyperlink(task.Description) {
		if err := openURL(task.Description); err != nil {
			a.err = err
		}
	}
}

// Run starts the interactive interface.
func Run(config Config) error {
	p := tea.NewProgram(NewApp(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
