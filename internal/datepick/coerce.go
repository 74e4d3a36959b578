package datepick

import "time"

// CoerceYear maps a year chosen in the year grid onto a concrete focus date.
// It keeps the month of the current focus where possible (the day always
// resets to 1; selecting a year is a month-level action) and snaps to the
// range's own month/day at the two boundaries.
//
// The result is always within rng and always a calendar-valid date, provided
// the caller only offers years between rng.First().Year() and
// rng.Last().Year(). Years outside that window are a caller bug; the upper
// fallback below still keeps the result in range for year = last year + 1,
// but that path is not part of the contract.
func CoerceYear(selectedYear int, focus time.Time, rng Range) time.Time {
	focus = Truncate(focus)

	year := selectedYear
	month := focus.Month()
	day := 1

	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	switch {
	case candidate.Before(rng.First()):
		// Selected the first year while focused on a month earlier than the
		// range opens: snap forward to the range's own start month/day.
		month = rng.First().Month()
		day = rng.First().Day()
	case candidate.After(rng.Last()):
		// Mirror snap at the upper bound, anchored to day 1.
		month = rng.Last().Month()
		if time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).After(rng.Last()) {
			// Even day 1 of the last month overflows; step back a year onto
			// the range's final date. Only reachable at the last-year edge.
			year--
			day = rng.Last().Day()
		}
	}

	day = ClampDay(year, month, day)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
