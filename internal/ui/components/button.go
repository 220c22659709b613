package components

import (
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// Button is a labelled action with a key shortcut. Disabled buttons are
// drawn dimmed and their owner ignores the shortcut.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// NewButton creates a new button.
func NewButton(key, label string, enabled bool) Button {
	return Button{Key: key, Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Foreground(theme.TextDim).Render(label)
}

// ButtonRow joins buttons with a gap.
func ButtonRow(buttons ...Button) string {
	var s string
	for i, b := range buttons {
		if i > 0 {
			s += "  "
		}
		s += b.View()
	}
	return s
}
