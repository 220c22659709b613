package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/hayakil/internal/ui/theme"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func chosenIndex(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(OptionChosenMsg)
	if !ok {
		t.Fatalf("expected OptionChosenMsg, got %T", cmd())
	}
	return msg.Index
}

func TestMultiChoice_Navigate(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c"}, 1)

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Errorf("up at top should stay at 0, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", m.Selected)
	}

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if got := chosenIndex(t, cmd); got != 2 {
		t.Errorf("chosen = %d, want 2", got)
	}
}

func TestMultiChoice_DigitShortcut(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b", "c"}, 0)

	_, cmd := m.Update(keyPress('2'))
	if got := chosenIndex(t, cmd); got != 1 {
		t.Errorf("chosen = %d, want 1", got)
	}

	_, cmd = m.Update(keyPress('4'))
	if cmd != nil {
		t.Error("digit beyond the options should be ignored")
	}
}

func TestMultiChoice_ThemeStyles(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, 0)
	view := m.View()
	if !strings.Contains(view, theme.Selected.Render("▸ 1)  a")) {
		t.Errorf("cursor option should use the selected style: %q", view)
	}
	if !strings.Contains(view, theme.Unselected.Render("  2)  b")) {
		t.Errorf("other options should use the unselected style: %q", view)
	}

	locked := m.Lock(1).View()
	if !strings.Contains(locked, theme.Correct.Render("  1)  a  ✓")) {
		t.Errorf("correct option should use the correct style: %q", locked)
	}
	if !strings.Contains(locked, theme.Incorrect.Render("  2)  b  ✗")) {
		t.Errorf("chosen wrong option should use the incorrect style: %q", locked)
	}
}

func TestMultiChoice_LockedIgnoresKeys(t *testing.T) {
	m := NewMultiChoice([]string{"a", "b"}, 0).Lock(1)
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("locked component should not emit choices")
	}
	view := m.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Errorf("locked view should mark correct and chosen options: %q", view)
	}
}

func TestTextInput_NumericFilter(t *testing.T) {
	ti := NewTextInput("", true, 6)
	for _, r := range "-1a2-" {
		ti, _ = ti.Update(keyPress(r))
	}
	if got := ti.Value(); got != "-12" {
		t.Errorf("Value() = %q, want %q", got, "-12")
	}
	n, err := ti.NumericValue()
	if err != nil || n != -12 {
		t.Errorf("NumericValue() = %d, %v", n, err)
	}
}

func TestTextInput_EmptyIsInvalid(t *testing.T) {
	ti := NewTextInput("", true, 6)
	if _, err := ti.NumericValue(); err == nil {
		t.Error("empty input should not parse")
	}
}

func TestProgressBar_Filled(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{0.5, 10, 5},
		{0.125, 16, 2},
		{1.5, 10, 10},
		{-1, 10, 0},
	}
	for _, tt := range tests {
		p := ProgressBar{Percent: tt.percent}
		if got := p.Filled(tt.width); got != tt.want {
			t.Errorf("Filled(%v, %d) = %d, want %d", tt.percent, tt.width, got, tt.want)
		}
	}
}

func TestTabs_Wraps(t *testing.T) {
	tabs := Tabs{Labels: []string{"one", "two", "three", "four"}, Active: 1}
	if got := strings.Count(tabs.View(200), "\n"); got != 0 {
		t.Errorf("wide tabs should fit one row, got %d breaks", got)
	}
	if got := strings.Count(tabs.View(12), "\n"); got == 0 {
		t.Error("narrow tabs should wrap")
	}
}
