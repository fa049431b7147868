// Package parser converts user-entered text into domain types.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"taskline/internal/errors"
)

// DateLayout is the canonical date entry format.
const DateLayout = "2006-01-02"

// ParseDate parses user-entered date text. The canonical YYYY-MM-DD
// layout is tried first, then natural language expressions such as
// "tomorrow" or "next friday". The returned time is in the local zone.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return time.Now(), nil
	}

	if t, err := time.ParseInLocation(DateLayout, input, time.Local); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.ErrInvalidDate, "'%s'", input)
	}
	return result.Time.In(time.Local), nil
}
