package tui

import (
	"taskline/internal/model"
	"taskline/internal/parser"
	"taskline/internal/validate"
)

// Form field indices, in display order.
const (
	fieldName = iota
	fieldDate
	fieldRepeats
	fieldDescription
	numFields
)

var fieldLabels = [numFields]string{
	"Name",
	"Date (YYYY-MM-DD or natural language)",
	"Repeats (Never | Daily | Weekly | Monthly | Yearly | Mon,Tue,...)",
	"Description",
}

// taskForm holds the text being edited for a new or existing task.
type taskForm struct {
	fields  [numFields]string
	focus   int
	editing bool
	errText string
}

// newTaskForm returns an empty form dated today.
func newTaskForm() taskForm {
	var f taskForm
	f.fields[fieldDate] = "today"
	return f
}

// formFromTask pre-fills a form with an existing task's values.
func formFromTask(t *model.Task) taskForm {
	var f taskForm
	f.fields[fieldName] = t.Name
	f.fields[fieldDate] = t.Date.Format(parser.DateLayout)
	f.fields[fieldRepeats] = t.Repeats.String()
	f.fields[fieldDescription] = t.Description
	return f
}

func (f *taskForm) nextField() {
	if f.focus < numFields-1 {
		f.focus++
	}
}

func (f *taskForm) prevField() {
	if f.focus > 0 {
		f.focus--
	}
}

func (f *taskForm) insert(s string) {
	f.fields[f.focus] += s
}

func (f *taskForm) backspace() {
	field := f.fields[f.focus]
	if field == "" {
		return
	}
	runes := []rune(field)
	f.fields[f.focus] = string(runes[:len(runes)-1])
}

// submit parses and validates every field before touching any task
// state, so a failed submit mutates nothing.
func (f *taskForm) submit() (*model.Task, error) {
	if err := validate.TaskName(f.fields[fieldName]); err != nil {
		return nil, err
	}
	if err := validate.Description(f.fields[fieldDescription]); err != nil {
		return nil, err
	}

	date, err := parser.ParseDate(f.fields[fieldDate])
	if err != nil {
		return nil, err
	}
	repeats, err := parser.ParseRepeat(f.fields[fieldRepeats])
	if err != nil {
		return nil, err
	}

	task := model.NewTask()
	task.SetName(f.fields[fieldName])
	task.SetDate(date)
	task.SetRepeats(repeats)
	task.SetDescription(f.fields[fieldDescription])
	return task, nil
}
