package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/d-r-k-k-l-n-r-j-w-l/easy-date-timeline/internal/datepick"
)

func newTestYearGrid(t *testing.T) *yearGrid {
	t.Helper()
	rng, err := datepick.NewRange(
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewRange: %v", err)
	}
	current := time.Date(2022, time.March, 15, 0, 0, 0, 0, time.UTC)
	focused := time.Date(2022, time.March, 20, 0, 0, 0, 0, time.UTC)
	return newYearGrid(rng, current, focused)
}

func TestYearGrid_CursorMovementClamps(t *testing.T) {
	g := newTestYearGrid(t)
	if g.cursor != 2022 {
		t.Fatalf("cursor=%d, want initial 2022", g.cursor)
	}

	g.Update(keyRunes("l"))
	if g.cursor != 2023 {
		t.Fatalf("cursor=%d after l, want 2023", g.cursor)
	}
	g.Update(keyRunes("j"))
	if g.cursor != 2025 {
		t.Fatalf("cursor=%d after j, want clamped 2025", g.cursor)
	}
	g.Update(keyRunes("l"))
	if g.cursor != 2025 {
		t.Fatalf("cursor=%d, want pinned at last year", g.cursor)
	}
	g.Update(keyRunes("k"))
	g.Update(keyRunes("k"))
	if g.cursor != 2020 {
		t.Fatalf("cursor=%d, want clamped 2020", g.cursor)
	}
	g.Update(keyRunes("h"))
	if g.cursor != 2020 {
		t.Fatalf("cursor=%d, want pinned at first year", g.cursor)
	}
}

func TestYearGrid_EnterFiresYearChanged(t *testing.T) {
	g := newTestYearGrid(t)

	got := 0
	g.onYearChanged = func(y int) { got = y }

	g.Update(keyRunes("l"))
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got != 2023 {
		t.Fatalf("onYearChanged got %d, want 2023", got)
	}
}

func TestYearGrid_JumpSelectsTypedYear(t *testing.T) {
	g := newTestYearGrid(t)

	got := 0
	g.onYearChanged = func(y int) { got = y }

	handled, cmd := g.Update(keyRunes("g"))
	if !handled || cmd == nil {
		t.Fatalf("expected g to open the jump input with a blink command")
	}
	if !g.typing() {
		t.Fatalf("expected typing after g")
	}

	g.Update(keyRunes("2024"))
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if g.typing() {
		t.Fatalf("expected jump input closed after a valid submit")
	}
	if got != 2024 {
		t.Fatalf("onYearChanged got %d, want 2024", got)
	}
	if g.cursor != 2024 {
		t.Fatalf("cursor=%d, want 2024", g.cursor)
	}
}

func TestYearGrid_JumpRejectsShortInput(t *testing.T) {
	g := newTestYearGrid(t)

	g.Update(keyRunes("g"))
	g.Update(keyRunes("99"))
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !g.typing() {
		t.Fatalf("expected jump input to stay open on invalid input")
	}
	if g.jumpErr != "enter a 4-digit year" {
		t.Fatalf("jumpErr=%q", g.jumpErr)
	}
}

func TestYearGrid_JumpRejectsYearOutsideSpan(t *testing.T) {
	g := newTestYearGrid(t)

	fired := false
	g.onYearChanged = func(int) { fired = true }

	g.Update(keyRunes("g"))
	g.Update(keyRunes("1999"))
	g.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !g.typing() {
		t.Fatalf("expected jump input to stay open for out-of-span year")
	}
	if !strings.Contains(g.jumpErr, "2020-2025") {
		t.Fatalf("jumpErr=%q, want span hint", g.jumpErr)
	}
	if fired {
		t.Fatalf("expected no year event for a rejected jump")
	}
}

func TestYearGrid_EscClosesJumpOnly(t *testing.T) {
	g := newTestYearGrid(t)

	g.Update(keyRunes("g"))
	handled, _ := g.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled {
		t.Fatalf("expected esc handled by the open jump input")
	}
	if g.typing() {
		t.Fatalf("expected jump input closed after esc")
	}
	if g.jumpErr != "" {
		t.Fatalf("expected jump error cleared, got %q", g.jumpErr)
	}
}

func TestYearGrid_ViewListsSpanAndJumpLine(t *testing.T) {
	g := newTestYearGrid(t)

	out := ansi.Strip(g.View())
	for _, y := range []string{"2020", "2022", "2025"} {
		if !strings.Contains(out, y) {
			t.Fatalf("expected %s in view, got:\n%s", y, out)
		}
	}
	if strings.Contains(out, "Jump to year") {
		t.Fatalf("jump line must be hidden while not typing")
	}

	g.Update(keyRunes("g"))
	out = ansi.Strip(g.View())
	if !strings.Contains(out, "Jump to year") {
		t.Fatalf("expected jump line while typing, got:\n%s", out)
	}
}
