package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/content"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// PlaceholderScreen stands in for a simulator that is not built yet.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)
var _ screen.KeyHintProvider = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	badge := lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true).
		Render("🚧 " + content.UnderConstructionLabel + " 🚧")
	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("هذا المحاكي قيد التطوير حالياً.\nتابعنا قريباً!")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(badge + "\n\n" + body)
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}

func (p *PlaceholderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "رجوع"}}
}
