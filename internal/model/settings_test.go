package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings("install-key")

	assert.Equal(t, KeySettings, s.GetKey())
	assert.Equal(t, "install-key", s.InstallKey)
	assert.False(t, s.ShowComplete)
	assert.NotEmpty(t, s.DateFormat)
	assert.NotEmpty(t, s.Icons.Complete)
	assert.NotEmpty(t, s.Icons.Incomplete)
}

func TestSettingsIcons(t *testing.T) {
	s := NewSettings("k")

	assert.Equal(t, s.Icons.Complete, s.CompleteIcon(true))
	assert.Equal(t, s.Icons.Incomplete, s.CompleteIcon(false))

	assert.Empty(t, s.RepeatsIcon(Never()))
	assert.Equal(t, s.Icons.Repeats, s.RepeatsIcon(Repeat{Kind: RepeatDaily}))
	assert.Equal(t, s.Icons.Repeats, s.RepeatsIcon(OnWeekdays(time.Monday)))
}
