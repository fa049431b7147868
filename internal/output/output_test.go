package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskline/internal/model"
)

func testFormatter(buf *bytes.Buffer) *Formatter {
	f := NewFormatter()
	f.Writer = buf
	f.ColorMode = ColorNever
	return f
}

func testTask(id uint64, name string, day time.Time, complete bool) *model.Task {
	t := model.NewTask()
	t.ID = id
	t.SetName(name)
	t.SetDate(day)
	t.Complete = complete
	return t
}

func TestIsColorEnabled(t *testing.T) {
	f := NewFormatter()
	f.Writer = &bytes.Buffer{}

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto with a non-terminal writer
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestWidthNonTerminal(t *testing.T) {
	f := NewFormatter()
	f.Writer = &bytes.Buffer{}
	assert.Equal(t, DefaultWidth, f.Width())
}

func TestPrintTaskGroups(t *testing.T) {
	day1 := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	settings := model.NewSettings("k")

	groups := [][]*model.Task{
		{testTask(1, "water plants", day1, false), testTask(2, "pay rent", day1, true)},
		{testTask(3, "standup", day2, false)},
	}

	t.Run("hides_completed", func(t *testing.T) {
		var buf bytes.Buffer
		cli := NewCLIFormatter(testFormatter(&buf))
		cli.PrintTaskGroups(groups, settings, false)

		out := buf.String()
		assert.Contains(t, out, "water plants")
		assert.Contains(t, out, "standup")
		assert.NotContains(t, out, "pay rent")
		assert.Contains(t, out, "MAR 11")
	})

	t.Run("show_completed", func(t *testing.T) {
		var buf bytes.Buffer
		cli := NewCLIFormatter(testFormatter(&buf))
		cli.PrintTaskGroups(groups, settings, true)
		assert.Contains(t, buf.String(), "pay rent")
	})

	t.Run("fully_hidden_group_suppressed", func(t *testing.T) {
		var buf bytes.Buffer
		cli := NewCLIFormatter(testFormatter(&buf))
		cli.PrintTaskGroups([][]*model.Task{
			{testTask(1, "done thing", day1, true)},
			{testTask(2, "open thing", day2, false)},
		}, settings, false)

		assert.NotContains(t, buf.String(), "MAR 11")
		assert.Contains(t, buf.String(), "MAR 12")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		cli := NewCLIFormatter(testFormatter(&buf))
		cli.PrintTaskGroups(nil, settings, false)
		assert.Contains(t, buf.String(), "No tasks.")
	})
}

func TestPrintTaskDetails(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	settings := model.NewSettings("k")

	task := testTask(4, "standup", time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local), false)
	task.SetRepeats(model.Repeat{Kind: model.RepeatDaily})
	task.SetDescription("https://example.com/meet")
	cli.PrintTask(task, settings)

	out := buf.String()
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "Repeats: Daily")
	assert.Contains(t, out, "https://example.com/meet")
}

func TestPrintTasksPlain(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))
	day := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local)

	cli.PrintTasksPlain([]*model.Task{testTask(1, "water plants", day, true)})
	assert.Equal(t, "1\tcomplete\t2024-03-11\tNever\twater plants\n", buf.String())
}

func TestJSONPrintTasks(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(testFormatter(&buf))
	day := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local)

	require.NoError(t, jf.PrintTasks([]*model.Task{testTask(1, "a", day, false)}))

	var resp TaskListResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, uint64(1), resp.Tasks[0].ID)
	assert.Equal(t, "Never", resp.Tasks[0].Repeats)
}

func TestJSONPrintTaskWithSuccessor(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(testFormatter(&buf))
	day := time.Date(2024, time.March, 11, 9, 0, 0, 0, time.Local)

	task := testTask(1, "standup", day, true)
	successor := testTask(2, "standup", day.AddDate(0, 0, 1), false)
	require.NoError(t, jf.PrintTask("completed", task, successor))

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.Successor)
	assert.Equal(t, uint64(2), resp.Successor.ID)
}

func TestJSONPrintError(t *testing.T) {
	var buf bytes.Buffer
	jf := NewJSONFormatter(testFormatter(&buf))

	require.NoError(t, jf.PrintError("task not found", "Use 'taskline ls'"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "task not found", resp.Error)
}
