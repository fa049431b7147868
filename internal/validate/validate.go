// Package validate provides input validation helpers for the Taskline CLI.
package validate

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"taskline/internal/errors"
)

const (
	// MaxNameLength is the maximum length for a task name.
	MaxNameLength = 128
	// MaxDescriptionLength is the maximum length for a description.
	MaxDescriptionLength = 4096
)

// TaskName validates a task name.
func TaskName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField("name", name,
			"Task name too long",
			"Task names must be 128 characters or fewer")
	}
	return nil
}

// Description validates a task description.
func Description(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return errors.NewUserError(
			"Description too long",
			"Descriptions must be 4096 characters or fewer")
	}
	return nil
}

// IsHyperlink reports whether text is a single http(s) URL, suitable
// for opening from the task details view.
func IsHyperlink(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, " \t\n") {
		return false
	}
	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
