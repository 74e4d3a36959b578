package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/datepick"
)

const yearGridColumns = 4

// yearGrid is the year-view child: every selectable year in a fixed-column
// grid, plus a "jump to year" input. Selecting a year fires onYearChanged;
// the dialog then forces month mode via the controller.
type yearGrid struct {
	firstYear   int
	lastYear    int
	cursor      int
	currentYear int

	jumping bool
	jumpErr string
	jump    textinput.Model

	onYearChanged func(year int)
}

func newYearGrid(rng datepick.Range, current, focused time.Time) *yearGrid {
	first, last := rng.Years()

	in := textinput.New()
	in.Placeholder = "yyyy"
	in.CharLimit = 4
	in.Width = 4
	in.Prompt = ""
	in.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}

	return &yearGrid{
		firstYear:   first,
		lastYear:    last,
		cursor:      focused.Year(),
		currentYear: current.Year(),
		jump:        in,
	}
}

// SetCursor moves the cursor to year, clamped to the selectable span.
func (g *yearGrid) SetCursor(year int) {
	if year < g.firstYear {
		year = g.firstYear
	}
	if year > g.lastYear {
		year = g.lastYear
	}
	g.cursor = year
}

// typing reports whether the jump input currently owns the keyboard; the
// dialog routes keys here first while it does.
func (g *yearGrid) typing() bool { return g.jumping }

// Update consumes one key. Returns whether the grid handled it and an
// optional command (cursor blink for the jump input).
func (g *yearGrid) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if g.jumping {
		switch msg.String() {
		case "enter":
			g.submitJump()
			return true, nil
		case "esc", "ctrl+g":
			g.jumping = false
			g.jumpErr = ""
			g.jump.Blur()
			return true, nil
		default:
			var cmd tea.Cmd
			g.jump, cmd = g.jump.Update(msg)
			g.jumpErr = ""
			return true, cmd
		}
	}

	switch msg.String() {
	case "left", "h":
		g.SetCursor(g.cursor - 1)
	case "right", "l":
		g.SetCursor(g.cursor + 1)
	case "up", "k":
		g.SetCursor(g.cursor - yearGridColumns)
	case "down", "j":
		g.SetCursor(g.cursor + yearGridColumns)
	case "g", "/":
		g.jumping = true
		g.jump.SetValue("")
		g.jump.Focus()
		return true, textinput.Blink
	case "enter":
		if g.onYearChanged != nil {
			g.onYearChanged(g.cursor)
		}
	default:
		return false, nil
	}
	return true, nil
}

func (g *yearGrid) submitJump() {
	raw := strings.TrimSpace(g.jump.Value())
	y, err := strconv.Atoi(raw)
	if err != nil || len(raw) != 4 {
		g.jumpErr = "enter a 4-digit year"
		return
	}
	if y < g.firstYear || y > g.lastYear {
		g.jumpErr = fmt.Sprintf("year must be %d-%d", g.firstYear, g.lastYear)
		return
	}
	g.jumping = false
	g.jumpErr = ""
	g.jump.Blur()
	g.SetCursor(y)
	if g.onYearChanged != nil {
		g.onYearChanged(y)
	}
}

// View renders the year cells and, while jumping, the input line.
func (g *yearGrid) View() string {
	var lines []string
	row := ""
	col := 0
	for y := g.firstYear; y <= g.lastYear; y++ {
		row += g.renderYear(y)
		col++
		if col == yearGridColumns {
			lines = append(lines, strings.TrimRight(row, " "))
			row, col = "", 0
		}
	}
	if row != "" {
		lines = append(lines, strings.TrimRight(row, " "))
	}

	if g.jumping {
		line := styleMuted().Render("Jump to year: ") + g.jump.View()
		if g.jumpErr != "" {
			line += "  " + lipgloss.NewStyle().Foreground(colorFlashBg).Render(g.jumpErr)
		}
		lines = append(lines, "", line)
	}
	return strings.Join(lines, "\n")
}

func (g *yearGrid) renderYear(y int) string {
	label := fmt.Sprintf("%4d", y)

	st := lipgloss.NewStyle()
	if y == g.cursor {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	if y == g.currentYear {
		st = st.Underline(true)
	}
	return st.Render(label) + "  "
}
