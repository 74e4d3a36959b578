package datepick

import (
	"fmt"
	"time"
)

// Mode selects which grid the dialog shows.
type Mode int

const (
	ModeMonth Mode = iota
	ModeYear
)

func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "month"
	case ModeYear:
		return "year"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "month" or "year" (CLI flag / config value).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "month":
		return ModeMonth, nil
	case "year":
		return ModeYear, nil
	default:
		return ModeMonth, fmt.Errorf("unknown picker mode: %q (want month or year)", s)
	}
}

// Config carries everything needed to open a picker.
//
// Zero-value Focus defaults to First; zero-value Current defaults to today.
// Feedback, if set, fires before every mode change and year selection
// (the dialog uses it for a visual "haptic" cue). It is never called for
// plain focus-date updates.
type Config struct {
	First   time.Time
	Last    time.Time
	Focus   time.Time
	Current time.Time
	Mode    Mode

	Feedback func()
}

// Controller owns the transient selection state for one open dialog:
// the current mode and the focused date. It lives for the dialog's lifetime;
// the focused date is the dialog result on confirmation.
type Controller struct {
	rng     Range
	mode    Mode
	focused time.Time
	current time.Time

	feedback func()
}

// NewController validates cfg and builds the initial state.
// An inverted range or an out-of-range focus date is a construction error.
func NewController(cfg Config) (*Controller, error) {
	rng, err := NewRange(cfg.First, cfg.Last)
	if err != nil {
		return nil, err
	}

	focus := rng.First()
	if !cfg.Focus.IsZero() {
		focus = Truncate(cfg.Focus)
		if !rng.Contains(focus) {
			return nil, fmt.Errorf("focus date %s outside range [%s, %s]",
				focus.Format("2006-01-02"),
				rng.First().Format("2006-01-02"),
				rng.Last().Format("2006-01-02"))
		}
	}

	current := Truncate(time.Now())
	if !cfg.Current.IsZero() {
		current = Truncate(cfg.Current)
	}

	return &Controller{
		rng:      rng,
		mode:     cfg.Mode,
		focused:  focus,
		current:  current,
		feedback: cfg.Feedback,
	}, nil
}

func (c *Controller) Range() Range       { return c.rng }
func (c *Controller) Mode() Mode         { return c.mode }
func (c *Controller) Focused() time.Time { return c.focused }
func (c *Controller) Current() time.Time { return c.current }

// SetMode sets the displayed grid. Used by the header toggle control.
func (c *Controller) SetMode(m Mode) {
	c.fireFeedback()
	c.mode = m
}

// ToggleMode flips between the month and year grids.
func (c *Controller) ToggleMode() {
	if c.mode == ModeMonth {
		c.SetMode(ModeYear)
	} else {
		c.SetMode(ModeMonth)
	}
}

// SetFocusedDate replaces the focused date unconditionally. The month grid
// reports any date it likes here, including full day granularity; callers
// are expected to stay in range.
func (c *Controller) SetFocusedDate(d time.Time) {
	c.focused = Truncate(d)
}

// SetYear handles a selection from the year grid: it always switches back to
// the month grid (a one-way transition, distinct from the manual toggle) and
// re-anchors the focus via CoerceYear.
func (c *Controller) SetYear(year int) {
	c.fireFeedback()
	c.mode = ModeMonth
	c.SetFocusedDate(CoerceYear(year, c.focused, c.rng))
}

func (c *Controller) fireFeedback() {
	if c.feedback != nil {
		c.feedback()
	}
}
