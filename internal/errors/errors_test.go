package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("invalid input", "try again")
	assert.Equal(t, "invalid input", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	withField := NewUserErrorWithField("date", "2024-13-99", "invalid date", "use YYYY-MM-DD")
	assert.Equal(t, "invalid date: '2024-13-99'", withField.Error())
}

func TestSystemError(t *testing.T) {
	cause := errors.New("disk gone")
	err := NewSystemError("save", "storage failure", cause)

	assert.Equal(t, "storage failure during save", err.Error())
	assert.True(t, IsSystemError(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ctx"))

	wrapped := Wrap(ErrTaskNotFound, "toggling")
	assert.ErrorIs(t, wrapped, ErrTaskNotFound)
	assert.Equal(t, "toggling: task not found", wrapped.Error())

	wrappedF := Wrapf(ErrTaskNotFound, "task %d", 7)
	assert.ErrorIs(t, wrappedF, ErrTaskNotFound)
}

func TestGetSuggestion(t *testing.T) {
	assert.NotEmpty(t, GetSuggestion(ErrTaskNotFound))
	assert.NotEmpty(t, GetSuggestion(Wrap(ErrInvalidDate, "parsing")))
	assert.Empty(t, GetSuggestion(errors.New("unknown")))

	ue := NewUserError("bad", "do better")
	assert.Equal(t, "do better", GetSuggestion(ue))
}

func TestFormatError(t *testing.T) {
	msg := FormatError(ErrInvalidRepeat)
	assert.Contains(t, msg, "invalid repeat rule")
	assert.Contains(t, msg, "Daily")

	plain := FormatError(errors.New("boom"))
	assert.Equal(t, "boom", plain)
}
