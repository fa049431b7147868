package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask()

	assert.Zero(t, task.ID)
	assert.Empty(t, task.Name)
	assert.True(t, task.Repeats.IsNever())
	assert.False(t, task.Complete)
	assert.WithinDuration(t, time.Now(), task.Date, time.Second)
}

func TestTaskSetGetKey(t *testing.T) {
	task := &Task{}
	task.SetKey("task:000000000007")
	assert.Equal(t, "task:000000000007", task.GetKey())
}

func TestGenerateTaskKey(t *testing.T) {
	assert.Equal(t, "task:000000000001", GenerateTaskKey(1))
	assert.Equal(t, "task:000000004242", GenerateTaskKey(4242))
}

func TestTaskSetters(t *testing.T) {
	task := NewTask()
	when := date(2024, time.May, 4)

	task.SetName("water plants")
	task.SetDate(when)
	task.SetRepeats(Repeat{Kind: RepeatWeekly})
	task.SetDescription("the ones on the balcony")

	assert.Equal(t, "water plants", task.Name)
	assert.Equal(t, when, task.Date)
	assert.Equal(t, RepeatWeekly, task.Repeats.Kind)
	assert.Equal(t, "the ones on the balcony", task.Description)
}

func TestMustIDPanicsBeforeAdmission(t *testing.T) {
	task := NewTask()
	assert.Panics(t, func() { task.MustID() })

	task.ID = 3
	assert.NotPanics(t, func() { task.MustID() })
	assert.Equal(t, uint64(3), task.MustID())
}

func TestSetCompleteNeverRule(t *testing.T) {
	task := NewTask()
	task.SetName("one-off")

	successor := task.SetComplete()

	assert.True(t, task.Complete)
	assert.Nil(t, successor)
}

func TestSetCompleteSpawnsSuccessor(t *testing.T) {
	task := NewTask()
	task.ID = 9
	task.SetName("standup")
	task.SetDate(date(2024, time.March, 15))
	task.SetRepeats(Repeat{Kind: RepeatDaily})
	task.SetDescription("https://example.com/meet")

	successor := task.SetComplete()

	require.NotNil(t, successor)
	// Original is a completed historical record, not rescheduled
	assert.True(t, task.Complete)
	assert.Equal(t, date(2024, time.March, 15), task.Date)

	// Successor copies everything but date, state and identity
	assert.Equal(t, "standup", successor.Name)
	assert.Equal(t, task.Repeats, successor.Repeats)
	assert.Equal(t, task.Description, successor.Description)
	assert.Equal(t, date(2024, time.March, 16), successor.Date)
	assert.False(t, successor.Complete)
	assert.Zero(t, successor.ID)
	assert.Empty(t, successor.Key)
	assert.True(t, successor.Date.After(task.Date))
}

func TestSetCompleteMonthlyOverflowNoSuccessor(t *testing.T) {
	// Documented policy: a monthly task dated Jan 31 completes without
	// spawning a February occurrence.
	task := NewTask()
	task.SetDate(date(2024, time.January, 31))
	task.SetRepeats(Repeat{Kind: RepeatMonthly})

	successor := task.SetComplete()

	assert.True(t, task.Complete)
	assert.Nil(t, successor)
}

func TestSetIncomplete(t *testing.T) {
	task := NewTask()
	task.SetRepeats(Repeat{Kind: RepeatDaily})
	task.Complete = true

	successor := task.SetIncomplete()

	assert.False(t, task.Complete)
	assert.Nil(t, successor)
}

func TestToggleComplete(t *testing.T) {
	task := NewTask()
	task.SetDate(date(2024, time.March, 15))
	task.SetRepeats(Repeat{Kind: RepeatDaily})

	first := task.ToggleComplete()
	require.NotNil(t, first)
	assert.True(t, task.Complete)

	// Toggling back is the inverse on the flag and spawns nothing more
	second := task.ToggleComplete()
	assert.False(t, task.Complete)
	assert.Nil(t, second)
}

func TestTaskSameDay(t *testing.T) {
	task := NewTask()
	task.SetDate(time.Date(2024, time.March, 15, 23, 45, 0, 0, time.Local))

	assert.True(t, task.SameDay(time.Date(2024, time.March, 15, 0, 1, 0, 0, time.Local)))
	assert.False(t, task.SameDay(time.Date(2024, time.March, 16, 0, 1, 0, 0, time.Local)))
}
