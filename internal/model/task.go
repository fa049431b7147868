package model

import (
	"fmt"
	"time"
)

// Task represents a single to-do item. A task starts unadmitted
// (ID == 0) and receives its identifier when added to a collection.
type Task struct {
	Key         string    `json:"key"`
	ID          uint64    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Repeats     Repeat    `json:"repeats"`
	Description string    `json:"description,omitempty"`
	Complete    bool      `json:"complete"`
}

// SetKey sets the database key for this task.
func (t *Task) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this task.
func (t *Task) GetKey() string {
	return t.Key
}

// GenerateTaskKey generates a database key for a task. Keys are
// zero-padded so badger's lexicographic iteration preserves id order.
func GenerateTaskKey(id uint64) string {
	return fmt.Sprintf("%s:%012d", PrefixTask, id)
}

// NewTask creates a new unadmitted task dated now.
func NewTask() *Task {
	return &Task{
		Date:    time.Now(),
		Repeats: Never(),
	}
}

// MustID returns the task's identifier, panicking if the task has not
// been admitted to a collection. Reaching this with an unadmitted task
// is a caller bug, not recoverable input.
func (t *Task) MustID() uint64 {
	if t.ID == 0 {
		panic("task has no identifier: not yet added to a collection")
	}
	return t.ID
}

// SetName sets the display name.
func (t *Task) SetName(name string) {
	t.Name = name
}

// SetDate sets the anchor date.
func (t *Task) SetDate(date time.Time) {
	t.Date = date
}

// SetRepeats sets the recurrence rule.
func (t *Task) SetRepeats(repeats Repeat) {
	t.Repeats = repeats
}

// SetDescription sets the free-text description.
func (t *Task) SetDescription(description string) {
	t.Description = description
}

// SetComplete marks the task complete. If the recurrence rule yields a
// next occurrence, it returns an unadmitted successor: a copy of this
// task with the new date and incomplete state. The completed task
// itself is never rescheduled.
func (t *Task) SetComplete() *Task {
	t.Complete = true

	next, ok := t.Repeats.Next(t.Date)
	if !ok {
		return nil
	}

	successor := *t
	successor.Key = ""
	successor.ID = 0
	successor.Date = next
	successor.Complete = false
	return &successor
}

// SetIncomplete marks the task incomplete. It never spawns a successor.
func (t *Task) SetIncomplete() *Task {
	t.Complete = false
	return nil
}

// ToggleComplete flips the completion state, returning a spawned
// successor when completing a recurring task.
func (t *Task) ToggleComplete() *Task {
	if t.Complete {
		return t.SetIncomplete()
	}
	return t.SetComplete()
}

// SameDay reports whether the task's date falls on the given local
// calendar day.
func (t *Task) SameDay(day time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
