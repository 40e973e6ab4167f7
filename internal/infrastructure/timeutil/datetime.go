// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DepartureLayout renders a departure as two-digit day, abbreviated month and
// 24-hour clock, e.g. "15/Jun 08:30".
const DepartureLayout = "02/Jan 15:04"

// acceptedLayouts lists the ISO-8601 date-time forms accepted from callers,
// most specific first.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseWallClock parses an ISO-8601 date-time and returns its wall-clock value
// in UTC. Any zone offset in the input is dropped rather than applied, so
// "2023-06-15T08:00:00+02:00" and "2023-06-15T08:00:00" both yield 08:00.
func ParseWallClock(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date-time")
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return WallClock(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date-time %q: expected ISO-8601 such as 2006-01-02T15:04:05", value)
}

// WallClock returns the same calendar date and clock reading as t, in UTC.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// CombineDateAndClock takes the calendar date of date and the hour and minute
// of clock. Seconds and smaller units are dropped.
func CombineDateAndClock(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// FormatDeparture formats t with DepartureLayout.
func FormatDeparture(t time.Time) string {
	return t.Format(DepartureLayout)
}
