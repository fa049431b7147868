// Package collection owns the ordered in-memory task collection: it is
// the only component that assigns identifiers or mutates membership.
// Callers are expected to be single-threaded; the collection performs no
// internal locking.
package collection

import (
	"taskline/internal/errors"
	"taskline/internal/model"
)

// Store is the persistence provider the collection is loaded from and
// saved to. Load returns the ordered task sequence and the highest
// identifier ever assigned; Save replaces the stored sequence.
type Store interface {
	Load() ([]*model.Task, uint64, error)
	Save(tasks []*model.Task, lastID uint64) error
}

// Collection is the ordered set of tasks for the process lifetime.
type Collection struct {
	store  Store
	tasks  []*model.Task
	lastID uint64
}

// New loads a collection from the store.
func New(store Store) (*Collection, error) {
	tasks, lastID, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading tasks")
	}
	return &Collection{store: store, tasks: tasks, lastID: lastID}, nil
}

// Tasks returns the tasks in insertion order. The slice is shared;
// callers must not mutate it.
func (c *Collection) Tasks() []*model.Task {
	return c.tasks
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Add admits a task: it assigns the next unused identifier and appends
// the task. Identifiers increase monotonically and are never reused,
// even after deletions.
func (c *Collection) Add(task *model.Task) uint64 {
	c.lastID++
	task.ID = c.lastID
	task.Key = model.GenerateTaskKey(task.ID)
	c.tasks = append(c.tasks, task)
	return task.ID
}

// Get returns the task with the given identifier.
func (c *Collection) Get(id uint64) (*model.Task, error) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errors.ErrTaskNotFound
}

// Delete removes the task with the given identifier. Missing
// identifiers are a silent no-op.
func (c *Collection) Delete(id uint64) {
	for i, t := range c.tasks {
		if t.ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

// ToggleComplete flips the completion state of the task with the given
// identifier. When completing a recurring task spawns a successor, the
// successor is admitted immediately.
func (c *Collection) ToggleComplete(id uint64) error {
	task, err := c.Get(id)
	if err != nil {
		return err
	}

	if successor := task.ToggleComplete(); successor != nil {
		c.Add(successor)
	}
	return nil
}

// Save persists the current ordered sequence to the store.
func (c *Collection) Save() error {
	if err := c.store.Save(c.tasks, c.lastID); err != nil {
		return errors.NewSystemError("save", "could not persist tasks", err)
	}
	return nil
}
