package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/datepick"
)

// monthGrid is the month-view child: one calendar month with a day cursor.
// It reports cursor moves through onDateChanged and month paging that
// crosses a year boundary through onYearPageAdvanced; it never mutates the
// controller directly.
type monthGrid struct {
	rng           datepick.Range
	current       time.Time
	focused       time.Time
	firstWeekday  time.Weekday
	weekdayLabels [7]string

	onDateChanged      func(time.Time)
	onYearPageAdvanced func(year int)
}

func newMonthGrid(rng datepick.Range, current, focused time.Time, firstWeekday time.Weekday, loc locale) *monthGrid {
	return &monthGrid{
		rng:           rng,
		current:       datepick.Truncate(current),
		focused:       datepick.Truncate(focused),
		firstWeekday:  firstWeekday,
		weekdayLabels: loc.weekdaysShort,
	}
}

// SetFocused moves the cursor without emitting events (used when the
// controller re-anchors focus after a year selection).
func (g *monthGrid) SetFocused(d time.Time) {
	g.focused = datepick.Truncate(d)
}

func (g *monthGrid) Focused() time.Time { return g.focused }

// HandleKey consumes a movement key. Returns false for keys the grid does
// not own so the dialog can dispatch them.
func (g *monthGrid) HandleKey(keyName string) bool {
	switch keyName {
	case "left", "h":
		g.moveDays(-1)
	case "right", "l":
		g.moveDays(1)
	case "up", "k":
		g.moveDays(-7)
	case "down", "j":
		g.moveDays(7)
	case "[", "pgup":
		g.pageMonths(-1)
	case "]", "pgdown":
		g.pageMonths(1)
	default:
		return false
	}
	return true
}

func (g *monthGrid) moveDays(delta int) {
	cand := g.focused.AddDate(0, 0, delta)
	if !g.rng.Contains(cand) {
		// The cursor never leaves the selectable range; a move that would
		// cross a boundary is simply swallowed.
		return
	}
	g.setFocus(cand)
}

func (g *monthGrid) pageMonths(delta int) {
	y, mo, d := g.focused.Year(), int(g.focused.Month()), g.focused.Day()
	mo += delta
	for mo < 1 {
		mo += 12
		y--
	}
	for mo > 12 {
		mo -= 12
		y++
	}
	d = datepick.ClampDay(y, time.Month(mo), d)
	cand := g.rng.ClampInto(time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC))
	if datepick.SameMonth(cand, g.focused) {
		return
	}
	prevYear := g.focused.Year()
	g.setFocus(cand)
	if cand.Year() != prevYear && g.onYearPageAdvanced != nil {
		g.onYearPageAdvanced(cand.Year())
	}
}

func (g *monthGrid) setFocus(d time.Time) {
	g.focused = d
	if g.onDateChanged != nil {
		g.onDateChanged(d)
	}
}

// View renders the weekday header and the weeks of the focused month.
func (g *monthGrid) View() string {
	year, month := g.focused.Year(), g.focused.Month()
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := (int(firstOfMonth.Weekday()) - int(g.firstWeekday) + 7) % 7
	days := datepick.DaysIn(year, month)

	var lines []string
	lines = append(lines, g.weekdayHeader())

	row := strings.Repeat("   ", lead)
	col := lead
	for day := 1; day <= days; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		row += g.renderDay(d)
		col++
		if col == 7 {
			lines = append(lines, strings.TrimRight(row, " "))
			row, col = "", 0
		}
	}
	if row != "" {
		lines = append(lines, strings.TrimRight(row, " "))
	}
	return strings.Join(lines, "\n")
}

func (g *monthGrid) weekdayHeader() string {
	var cells []string
	for i := 0; i < 7; i++ {
		wd := (int(g.firstWeekday) + i) % 7
		cells = append(cells, styleMuted().Render(g.weekdayLabels[wd]))
	}
	return strings.Join(cells, " ")
}

func (g *monthGrid) renderDay(d time.Time) string {
	label := fmt.Sprintf("%2d", d.Day())

	st := lipgloss.NewStyle()
	switch {
	case !g.rng.Contains(d):
		st = styleMuted()
	case d.Equal(g.focused):
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	if d.Equal(g.current) {
		st = st.Underline(true)
	}
	return st.Render(label) + " "
}
