package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/theme"
)

// Tabs is a horizontal row of labels with one active entry. Rows wrap
// when the labels do not fit the width.
type Tabs struct {
	Labels []string
	Active int
}

// View renders the tabs, numbering each label from 1.
func (t Tabs) View(width int) string {
	var rows []string
	var row []string
	rowWidth := 0

	for i, label := range t.Labels {
		text := fmt.Sprintf("%d %s", i+1, label)
		var cell string
		if i == t.Active {
			cell = lipgloss.NewStyle().
				Padding(0, 1).
				Background(theme.Primary).
				Foreground(theme.Text).
				Bold(true).
				Render(text)
		} else {
			cell = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(theme.TextDim).
				Render(text)
		}

		w := lipgloss.Width(cell) + 1
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		row = append(row, cell)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
