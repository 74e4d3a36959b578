package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Modal chrome shared by the dialog.
//
// No borders here: some terminals show background artifacts when nesting
// bordered components inside a box with a background color, so the modal is
// a header bar plus a padded surface block.

const (
	modalMinBodyWidth = 26
	modalMaxBodyWidth = 56
)

// modalBodyWidth returns the usable content width for a modal given the
// terminal width. Zero/unknown terminal width gets the minimum.
func modalBodyWidth(termWidth int) int {
	w := termWidth - 8
	if w < modalMinBodyWidth {
		return modalMinBodyWidth
	}
	if w > modalMaxBodyWidth {
		return modalMaxBodyWidth
	}
	return w
}

// renderModalBox renders a titled modal: header bar on top, body on a
// surface background below.
func renderModalBox(termWidth int, title string, body string) string {
	bodyW := modalBodyWidth(termWidth)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Padding(0, 1).
		Width(bodyW + 2).
		Render(title)

	surface := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Padding(1, 1).
		Width(bodyW + 2).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, surface)
}

// placeCentered centers the box in the terminal. With an unknown size
// (width/height zero, e.g. in tests) the box is returned unplaced.
func placeCentered(termWidth, termHeight int, box string) string {
	if termWidth <= 0 || termHeight <= 0 {
		return box
	}
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box)
}
