package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// Labels shown on the placeholder page.
const (
	UnderConstructionLabel = "قيد الإنشاء"
	QuizSoonLabel          = "اختبار (قريباً)"
)

// Render lays out the page of id for a panel of the given width.
func Render(id catalog.TopicID, width int) string {
	if width < 20 {
		width = 20
	}
	p := PageFor(id)

	var parts []string
	parts = append(parts,
		lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Bold(true).Foreground(theme.Primary).Render(p.Title),
		prose(p.Intro, width),
	)

	if p.UnderConstruction {
		parts = append(parts, "", renderPlaceholder(width))
		return strings.Join(parts, "\n")
	}

	for _, s := range p.Sections {
		parts = append(parts, "", renderSection(s, width))
	}
	return strings.Join(parts, "\n")
}

func prose(text string, width int) string {
	return theme.Body.
		Width(width).
		Align(lipgloss.Right).
		Render(text)
}

func renderSection(s Section, width int) string {
	var parts []string
	parts = append(parts, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		Bold(true).
		Foreground(theme.Secondary).
		Render("■ "+s.Heading))

	if s.Text != "" {
		parts = append(parts, prose(s.Text, width))
	}
	for _, c := range s.Cards {
		parts = append(parts, renderCard(c, width))
	}
	for _, c := range s.Code {
		parts = append(parts, renderCode(c, width))
	}
	return strings.Join(parts, "\n")
}

func renderCard(c Card, width int) string {
	inner := width - 6
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(c.Title + " " + c.Icon)
	lines := []string{title}
	for _, l := range c.Lines {
		lines = append(lines, "• "+l)
	}
	return theme.Card.
		Width(width).
		Padding(0, 2).
		Render(lipgloss.NewStyle().Width(inner).Align(lipgloss.Right).Render(strings.Join(lines, "\n")))
}

func renderCode(c Code, width int) string {
	title := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(c.Title)
	body := lipgloss.NewStyle().Foreground(theme.Code).Render(c.Source)
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Secondary).
		PaddingLeft(2).
		Render(title + "\n" + body)
}

func renderPlaceholder(width int) string {
	notice := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent).
		Render("🚧 " + UnderConstructionLabel)
	button := theme.ButtonInactive.Foreground(theme.TextDim).Render(QuizSoonLabel)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(notice + "\n\n" + button)
}
