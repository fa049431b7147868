package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitTextLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, Output: &buf})

	Debug("loading tasks", KeyCount, 3)
	assert.Contains(t, buf.String(), "loading tasks")
	assert.Contains(t, buf.String(), "count=3")
}

func TestInitJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})

	Error("save failed", KeyError, "disk gone")
	assert.Contains(t, buf.String(), `"msg":"save failed"`)
	assert.Contains(t, buf.String(), `"error":"disk gone"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})

	Debug("quiet")
	assert.Empty(t, buf.String())

	Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}
