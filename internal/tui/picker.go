// Package tui renders the month/year picker dialog: a modal with a header
// toggle, one of two grid views (month or year), and a confirm/cancel
// button row. All selection rules live in internal/datepick; this package
// only translates key events into controller calls and paints the state.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/datepick"
)

// Options configures one picker dialog.
type Options struct {
	First   time.Time // required
	Last    time.Time // required
	Focus   time.Time // zero: defaults to First
	Current time.Time // zero: defaults to today

	InitialMode  datepick.Mode
	ConfirmLabel string // empty: locale default
	CancelLabel  string // empty: locale default
	Locale       string
	FirstWeekday time.Weekday
	Theme        string // light | dark | auto; below EASYDATE_TUI_THEME
}

// Result is the dialog outcome: a selected date, or cancellation.
type Result struct {
	Selected  time.Time
	Cancelled bool
}

type focusArea int

const (
	focusGrid focusArea = iota
	focusConfirm
	focusCancel
)

func (f focusArea) next() focusArea { return (f + 1) % 3 }
func (f focusArea) prev() focusArea { return (f + 2) % 3 }

// flashClearMsg ends the short header flash that stands in for haptic
// feedback on mode changes and year selections.
type flashClearMsg struct{}

const flashDuration = 180 * time.Millisecond

// feedbackSignal bridges the controller's synchronous feedback hook into
// the Bubble Tea update cycle: the hook marks it pending, and the dialog
// converts that into a header flash after the controller call returns.
type feedbackSignal struct {
	pending bool
}

func (s *feedbackSignal) Trigger() { s.pending = true }

func (s *feedbackSignal) consume() bool {
	p := s.pending
	s.pending = false
	return p
}

type pickerModel struct {
	ctrl   *datepick.Controller
	signal *feedbackSignal
	keys   keyMap
	loc    locale

	month *monthGrid
	year  *yearGrid

	confirmLabel string
	cancelLabel  string

	focus  focusArea
	width  int
	height int
	flash  bool

	result Result
}

func newPickerModel(opts Options) (pickerModel, error) {
	sig := &feedbackSignal{}
	ctrl, err := datepick.NewController(datepick.Config{
		First:    opts.First,
		Last:     opts.Last,
		Focus:    opts.Focus,
		Current:  opts.Current,
		Mode:     opts.InitialMode,
		Feedback: sig.Trigger,
	})
	if err != nil {
		return pickerModel{}, err
	}

	loc := localeFor(opts.Locale)
	confirm := strings.TrimSpace(opts.ConfirmLabel)
	if confirm == "" {
		confirm = loc.confirm
	}
	cancel := strings.TrimSpace(opts.CancelLabel)
	if cancel == "" {
		cancel = loc.cancel
	}

	month := newMonthGrid(ctrl.Range(), ctrl.Current(), ctrl.Focused(), opts.FirstWeekday, loc)
	year := newYearGrid(ctrl.Range(), ctrl.Current(), ctrl.Focused())

	month.onDateChanged = ctrl.SetFocusedDate
	month.onYearPageAdvanced = year.SetCursor
	year.onYearChanged = func(y int) {
		ctrl.SetYear(y)
		month.SetFocused(ctrl.Focused())
		year.SetCursor(ctrl.Focused().Year())
	}

	return pickerModel{
		ctrl:         ctrl,
		signal:       sig,
		keys:         defaultKeyMap(),
		loc:          loc,
		month:        month,
		year:         year,
		confirmLabel: confirm,
		cancelLabel:  cancel,
	}, nil
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flashClearMsg:
		m.flash = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m pickerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the year-jump input is open it owns the keyboard, so esc closes
	// the input rather than the dialog.
	if m.focus == focusGrid && m.ctrl.Mode() == datepick.ModeYear && m.year.typing() {
		_, gridCmd := m.year.Update(msg)
		next, flashCmd := m.consumeFeedback()
		return next, tea.Batch(gridCmd, flashCmd)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.result = Result{Cancelled: true}
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		m.focus = m.focus.next()
		return m, nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = m.focus.prev()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleMode()
		m.focus = focusGrid
		return m.consumeFeedback()

	case key.Matches(msg, m.keys.Select):
		switch m.focus {
		case focusConfirm:
			m.result = Result{Selected: m.ctrl.Focused()}
			return m, tea.Quit
		case focusCancel:
			m.result = Result{Cancelled: true}
			return m, tea.Quit
		default:
			if m.ctrl.Mode() == datepick.ModeMonth {
				// Enter on the month grid confirms the focused date directly.
				m.result = Result{Selected: m.ctrl.Focused()}
				return m, tea.Quit
			}
			_, gridCmd := m.year.Update(msg)
			next, flashCmd := m.consumeFeedback()
			return next, tea.Batch(gridCmd, flashCmd)
		}
	}

	if m.focus != focusGrid {
		return m, nil
	}
	if m.ctrl.Mode() == datepick.ModeMonth {
		m.month.HandleKey(msg.String())
		return m, nil
	}
	_, gridCmd := m.year.Update(msg)
	next, flashCmd := m.consumeFeedback()
	return next, tea.Batch(gridCmd, flashCmd)
}

// consumeFeedback turns a pending controller feedback signal into a short
// header flash.
func (m pickerModel) consumeFeedback() (pickerModel, tea.Cmd) {
	if !m.signal.consume() {
		return m, nil
	}
	m.flash = true
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashClearMsg{} })
}

func (m pickerModel) View() string {
	title := m.loc.monthTitle
	if m.ctrl.Mode() == datepick.ModeYear {
		title = m.loc.yearTitle
	}

	var body string
	if m.ctrl.Mode() == datepick.ModeMonth {
		body = m.month.View()
	} else {
		body = m.year.View()
	}

	sections := []string{
		m.renderHeader(),
		"",
		body,
		"",
		m.renderButtons(),
		"",
		styleMuted().Width(modalBodyWidth(m.width)).Render(m.keys.helpLine(m.ctrl.Mode() == datepick.ModeYear)),
	}
	return placeCentered(m.width, m.height, renderModalBox(m.width, title, strings.Join(sections, "\n")))
}

func (m pickerModel) renderHeader() string {
	label := m.loc.monthYear(m.ctrl.Focused())

	st := lipgloss.NewStyle().Bold(true)
	if m.flash {
		st = st.Foreground(colorAccentFg).Background(colorFlashBg)
	}
	hint := styleMuted().Render("  t: " + m.otherModeName())
	return st.Render(label) + hint
}

func (m pickerModel) otherModeName() string {
	if m.ctrl.Mode() == datepick.ModeMonth {
		return datepick.ModeYear.String()
	}
	return datepick.ModeMonth.String()
}

func (m pickerModel) renderButtons() string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(m.confirmLabel)
	cancel := btnBase.Render(m.cancelLabel)
	if m.focus == focusConfirm {
		confirm = btnActive.Render(m.confirmLabel)
	}
	if m.focus == focusCancel {
		cancel = btnActive.Render(m.cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorSurfaceBg).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)
}

// Run opens the dialog and blocks until the user confirms or cancels.
func Run(opts Options) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)

	m, err := newPickerModel(opts)
	if err != nil {
		return Result{}, err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(pickerModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected final model %T", final)
	}
	return fm.result, nil
}
