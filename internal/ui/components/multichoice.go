package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/theme"
)

// OptionChosenMsg is emitted when the learner commits to an option.
type OptionChosenMsg struct {
	Index int
}

// MultiChoice is a multiple-choice selector component. It only tracks the
// cursor; the owner decides when the choice is locked and which is correct.
type MultiChoice struct {
	Options     []string
	Selected    int
	Locked      bool
	ChosenIndex int
	CorrectIdx  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:     options,
		CorrectIdx:  correctIndex,
		ChosenIndex: -1,
	}
}

// Lock freezes the component showing chosen against the correct option.
func (m MultiChoice) Lock(chosen int) MultiChoice {
	m.Locked = true
	m.ChosenIndex = chosen
	m.Selected = chosen
	return m
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		return m, choose(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Options) {
				m.Selected = i
				return m, choose(i)
			}
		}
	}

	return m, nil
}

func choose(i int) tea.Cmd {
	return func() tea.Msg { return OptionChosenMsg{Index: i} }
}

// View renders the options, numbered from 1.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Locked && i == m.CorrectIdx:
			style = theme.Correct
			line += "  ✓"
		case m.Locked && i == m.ChosenIndex:
			style = theme.Incorrect
			line += "  ✗"
		case m.Locked:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
