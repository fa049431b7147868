package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskline/internal/errors"
	"taskline/internal/model"
)

// =============================================================================
// Date Tests
// =============================================================================

func TestParseDateCanonical(t *testing.T) {
	got, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), got)
}

func TestParseDateEmptyMeansToday(t *testing.T) {
	for _, input := range []string{"", "  ", "today", "Today"} {
		got, err := ParseDate(input)
		require.NoError(t, err, "input %q", input)
		assert.WithinDuration(t, time.Now(), got, time.Second)
	}
}

func TestParseDateNaturalLanguage(t *testing.T) {
	got, err := ParseDate("tomorrow")
	require.NoError(t, err)

	want := time.Now().AddDate(0, 0, 1)
	assert.Equal(t, want.Day(), got.Day())
	assert.Equal(t, want.Month(), got.Month())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("not a date at all zzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDate)
}

// =============================================================================
// Repeat Tests
// =============================================================================

func TestParseRepeatIntervals(t *testing.T) {
	cases := map[string]model.RepeatKind{
		"":        model.RepeatNever,
		"Never":   model.RepeatNever,
		"never":   model.RepeatNever,
		"Daily":   model.RepeatDaily,
		"WEEKLY":  model.RepeatWeekly,
		"monthly": model.RepeatMonthly,
		"Yearly":  model.RepeatYearly,
	}

	for input, want := range cases {
		got, err := ParseRepeat(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got.Kind, "input %q", input)
	}
}

func TestParseRepeatWeekdays(t *testing.T) {
	got, err := ParseRepeat("Mon,Wed,Fri")
	require.NoError(t, err)
	assert.Equal(t, model.RepeatWeekdays, got.Kind)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, got.Days)

	// Full names, spaces and duplicates are tolerated
	got, err = ParseRepeat("saturday, Sunday, sat")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, got.Days)
}

func TestParseRepeatInvalid(t *testing.T) {
	for _, input := range []string{"sometimes", "Mon,Funday", "daily,weekly"} {
		_, err := ParseRepeat(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, errors.ErrInvalidRepeat)
	}
}

func TestParseRepeatRoundTrip(t *testing.T) {
	for _, input := range []string{"Daily", "Mon,Fri", "Never"} {
		r, err := ParseRepeat(input)
		require.NoError(t, err)
		again, err := ParseRepeat(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, again)
	}
}
