package utils

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// LoadLocation loads the named time zone, falling back to Local if the
// timezone data is missing. In production docker, ensure tzdata is installed.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// SystemClock returns a Clock reading the system time in loc
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock returns a Clock that always reads t
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// ParseReminderTime parses either a time of day (HH:MM or HH:MM:SS, taken on
// the day of now, in now's location) or a full RFC 3339 timestamp.
func ParseReminderTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty reminder time")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	for _, layout := range timeOfDayLayouts {
		tod, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(),
			tod.Hour(), tod.Minute(), tod.Second(), 0, now.Location()), nil
	}

	return time.Time{}, fmt.Errorf("invalid reminder time %q: want HH:MM[:SS] or RFC 3339", value)
}
