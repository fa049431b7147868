package model

import (
	"strings"
	"time"
)

// RepeatKind enumerates the supported recurrence rules.
type RepeatKind string

const (
	RepeatNever   RepeatKind = "never"
	RepeatDaily   RepeatKind = "daily"
	RepeatWeekly  RepeatKind = "weekly"
	RepeatMonthly RepeatKind = "monthly"
	RepeatYearly  RepeatKind = "yearly"
	// RepeatWeekdays recurs on an explicit set of weekdays.
	RepeatWeekdays RepeatKind = "weekdays"
)

// Repeat describes how a task recurs. Days is only meaningful for
// RepeatWeekdays.
type Repeat struct {
	Kind RepeatKind     `json:"kind"`
	Days []time.Weekday `json:"days,omitempty"`
}

// Never returns the non-recurring rule.
func Never() Repeat {
	return Repeat{Kind: RepeatNever}
}

// OnWeekdays returns a weekday-set rule.
func OnWeekdays(days ...time.Weekday) Repeat {
	return Repeat{Kind: RepeatWeekdays, Days: days}
}

// IsNever reports whether the rule never recurs.
func (r Repeat) IsNever() bool {
	return r.Kind == RepeatNever || r.Kind == ""
}

// ContainsDay reports whether a weekday-set rule includes the given day.
func (r Repeat) ContainsDay(day time.Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Next computes the next occurrence strictly after the anchor date.
// It returns ok=false when the rule yields no further occurrence:
// a Never rule, an empty weekday set, or Monthly/Yearly arithmetic
// landing in a month that lacks the anchor's day-of-month (Jan 31 + 1
// month). The overflow case deliberately produces no occurrence instead
// of clamping to the end of the month.
func (r Repeat) Next(anchor time.Time) (time.Time, bool) {
	switch r.Kind {
	case RepeatDaily:
		return anchor.AddDate(0, 0, 1), true
	case RepeatWeekly:
		return anchor.AddDate(0, 0, 7), true
	case RepeatMonthly:
		return addMonths(anchor, 1)
	case RepeatYearly:
		return addMonths(anchor, 12)
	case RepeatWeekdays:
		for i := 1; i <= 7; i++ {
			next := anchor.AddDate(0, 0, i)
			if r.ContainsDay(next.Weekday()) {
				return next, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// addMonths adds calendar months, rejecting results where Go's date
// normalization rolled past the target month (day-of-month overflow).
func addMonths(t time.Time, months int) (time.Time, bool) {
	next := t.AddDate(0, months, 0)
	if next.Day() != t.Day() {
		return time.Time{}, false
	}
	return next, true
}

// weekdayNames maps display names to weekdays for String round-trips.
var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String renders the rule in the user-facing grammar accepted by
// parser.ParseRepeat.
func (r Repeat) String() string {
	switch r.Kind {
	case RepeatDaily:
		return "Daily"
	case RepeatWeekly:
		return "Weekly"
	case RepeatMonthly:
		return "Monthly"
	case RepeatYearly:
		return "Yearly"
	case RepeatWeekdays:
		names := make([]string, 0, len(r.Days))
		for _, d := range r.Days {
			names = append(names, weekdayNames[int(d)%7])
		}
		return strings.Join(names, ",")
	default:
		return "Never"
	}
}
