// Package datepick holds the month/year picker's core state: the selectable
// date range, the controller that owns the current mode and focused date, and
// the coercion rule applied when a year is chosen from the year grid.
//
// The package is UI-free on purpose; the TUI layer drives it through plain
// method calls and reads state back when rendering.
package datepick

import "time"

// Truncate normalizes t to a naive calendar date: midnight UTC, no
// time-of-day component. Every date entering this package goes through it.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysIn reports the number of days in (year, month).
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps day into the valid range for (year, month). Handles day-31
// focus landing in a 30-day month and Feb 29 collapsing to 28 off leap years.
func ClampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if max := DaysIn(year, month); day > max {
		return max
	}
	return day
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
