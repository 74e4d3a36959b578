package datepick

import (
	"fmt"
	"time"
)

// Range is the inclusive [First, Last] bound on selectable dates.
// Construct via NewRange; the zero value is not valid.
type Range struct {
	first time.Time
	last  time.Time
}

// NewRange builds a Range from two dates (truncated to midnight).
// An inverted range is a contract violation and is rejected outright.
func NewRange(first, last time.Time) (Range, error) {
	f, l := Truncate(first), Truncate(last)
	if l.Before(f) {
		return Range{}, fmt.Errorf("inverted date range: first %s is after last %s",
			f.Format("2006-01-02"), l.Format("2006-01-02"))
	}
	return Range{first: f, last: l}, nil
}

func (r Range) First() time.Time { return r.first }
func (r Range) Last() time.Time  { return r.last }

// Contains reports whether d lies within the range, inclusive on both ends.
func (r Range) Contains(d time.Time) bool {
	d = Truncate(d)
	return !d.Before(r.first) && !d.After(r.last)
}

// ClampInto returns d moved to the nearest range boundary if it falls outside.
func (r Range) ClampInto(d time.Time) time.Time {
	d = Truncate(d)
	if d.Before(r.first) {
		return r.first
	}
	if d.After(r.last) {
		return r.last
	}
	return d
}

// Years returns the first and last selectable year.
func (r Range) Years() (int, int) {
	return r.first.Year(), r.last.Year()
}
