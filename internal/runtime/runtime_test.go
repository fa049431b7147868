package runtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskline/internal/model"
	"taskline/internal/output"
)

func setupContext(t *testing.T) *Context {
	t.Helper()
	opts := DefaultOptions()
	opts.InMemory = true
	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestNewContext(t *testing.T) {
	ctx := setupContext(t)

	assert.NotNil(t, ctx.Collection)
	assert.Zero(t, ctx.Collection.Len())
	assert.NotNil(t, ctx.Settings)
	assert.NotEmpty(t, ctx.Settings.InstallKey)
}

func TestContextFormats(t *testing.T) {
	ctx := setupContext(t)
	assert.False(t, ctx.IsJSON())
	assert.NotNil(t, ctx.CLIFormatter())
	assert.NotNil(t, ctx.JSONFormatter())

	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
}

func TestContextEnvOverride(t *testing.T) {
	t.Setenv("TASKLINE_DATABASE", ":memory:")

	opts := DefaultOptions()
	ctx, err := New(opts)
	require.NoError(t, err)
	defer ctx.Close()

	task := model.NewTask()
	task.SetName("a")
	task.SetDate(time.Now())
	ctx.Collection.Add(task)
	require.NoError(t, ctx.Collection.Save())
}
