package output

import (
	"time"

	"taskline/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// TaskOutput represents a task in JSON output.
type TaskOutput struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Repeats     string `json:"repeats"`
	Description string `json:"description,omitempty"`
	Complete    bool   `json:"complete"`
}

// NewTaskOutput creates a TaskOutput from a Task.
func NewTaskOutput(t *model.Task) *TaskOutput {
	return &TaskOutput{
		ID:          t.MustID(),
		Name:        t.Name,
		Date:        t.Date.Format(time.RFC3339),
		Repeats:     t.Repeats.String(),
		Description: t.Description,
		Complete:    t.Complete,
	}
}

// TaskListResponse represents a task listing in JSON.
type TaskListResponse struct {
	Status string        `json:"status"`
	Count  int           `json:"count"`
	Tasks  []*TaskOutput `json:"tasks"`
}

// PrintTasks outputs a task list as JSON.
func (j *JSONFormatter) PrintTasks(tasks []*model.Task) error {
	outputs := make([]*TaskOutput, 0, len(tasks))
	for _, t := range tasks {
		outputs = append(outputs, NewTaskOutput(t))
	}
	return j.JSON(TaskListResponse{
		Status: "ok",
		Count:  len(outputs),
		Tasks:  outputs,
	})
}

// TaskResponse represents a single-task result in JSON.
type TaskResponse struct {
	Status    string      `json:"status"`
	Task      *TaskOutput `json:"task"`
	Successor *TaskOutput `json:"successor,omitempty"`
}

// PrintTask outputs a single task as JSON.
func (j *JSONFormatter) PrintTask(status string, t *model.Task, successor *model.Task) error {
	resp := TaskResponse{Status: status, Task: NewTaskOutput(t)}
	if successor != nil {
		resp.Successor = NewTaskOutput(successor)
	}
	return j.JSON(resp)
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      message,
		Suggestion: suggestion,
	})
}
