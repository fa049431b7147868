package parser

import (
	"strings"
	"time"

	"taskline/internal/errors"
	"taskline/internal/model"
)

// weekdayAliases maps accepted weekday spellings to time.Weekday.
var weekdayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseRepeat parses repeat rule text. Accepted forms are the fixed
// intervals (Never, Daily, Weekly, Monthly, Yearly) or a comma-separated
// list of weekday names such as "Mon,Wed,Fri". Matching is
// case-insensitive; empty input means Never.
func ParseRepeat(input string) (model.Repeat, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "", "never":
		return model.Never(), nil
	case "daily":
		return model.Repeat{Kind: model.RepeatDaily}, nil
	case "weekly":
		return model.Repeat{Kind: model.RepeatWeekly}, nil
	case "monthly":
		return model.Repeat{Kind: model.RepeatMonthly}, nil
	case "yearly":
		return model.Repeat{Kind: model.RepeatYearly}, nil
	}

	days := make([]time.Weekday, 0, 7)
	seen := make(map[time.Weekday]bool)
	for _, part := range strings.Split(input, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		day, ok := weekdayAliases[name]
		if !ok {
			return model.Repeat{}, errors.Wrapf(errors.ErrInvalidRepeat, "'%s'", input)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return model.OnWeekdays(days...), nil
}
