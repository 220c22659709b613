package simulator

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/theme"
	"github.com/abhisek/hayakil/internal/visualizer"
)

// notice is the one-line outcome of the last operation.
type notice struct {
	text string
	err  bool
}

func (n notice) View() string {
	if n.text == "" {
		return ""
	}
	if n.err {
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(n.text)
	}
	return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(n.text)
}

func failure(kind visualizer.Kind, err error) notice {
	return notice{text: visualizer.Message(kind, err), err: true}
}

func newValueInput() components.TextInput {
	return components.NewTextInput("أدخل قيمة", true, 6)
}

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Width(8).
			Align(lipgloss.Center)

	activeCellStyle = cellStyle.
			BorderForeground(theme.Success).
			Foreground(theme.Success).
			Bold(true)
)

func cell(v int, active bool) string {
	if active {
		return activeCellStyle.Render(strconv.Itoa(v))
	}
	return cellStyle.Render(strconv.Itoa(v))
}

// chain renders values as boxes joined by sep.
func chain(values []int, sep string) string {
	parts := make([]string, 0, 2*len(values))
	arrow := lipgloss.NewStyle().Foreground(theme.Accent).Render(sep)
	for i, v := range values {
		if i > 0 {
			parts = append(parts, arrow)
		}
		parts = append(parts, cell(v, false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func dim(s string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(s)
}

func joinLines(lines ...string) string {
	out := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n\n")
}
