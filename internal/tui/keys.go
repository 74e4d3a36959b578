package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the dialog-level bindings. Grid-internal movement keys stay
// string-matched inside the grids; these are the bindings the picker itself
// dispatches on.
type keyMap struct {
	Toggle    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Select    key.Binding
	Cancel    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "month/year view"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab", "backtab"),
			key.WithHelp("shift+tab", "focus back"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+g", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// helpLine renders the footer hint for the active grid.
func (k keyMap) helpLine(yearMode bool) string {
	parts := []string{
		"h/j/k/l: move",
	}
	if yearMode {
		parts = append(parts, "g: jump")
	} else {
		parts = append(parts, "[/]: month")
	}
	parts = append(parts,
		k.Toggle.Help().Key+": "+k.Toggle.Help().Desc,
		k.NextFocus.Help().Key+": "+k.NextFocus.Help().Desc,
		k.Select.Help().Key+": "+k.Select.Help().Desc,
		k.Cancel.Help().Key+": "+k.Cancel.Help().Desc,
	)
	return strings.Join(parts, "  ")
}
