package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/hayakil/internal/quiz"
	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// Feedback and navigation labels.
const (
	correctLabel   = "✅ إجابة صحيحة!"
	incorrectLabel = "❌ إجابة خاطئة"
	prevLabel      = "السابق"
	nextLabel      = "التالي"
	resultsLabel   = "عرض النتائج"
)

func (s *QuizScreen) View(width, height int) string {
	cw := min(width-4, 90)
	var body string
	if s.session.ShowingResults() {
		body = s.renderResults(cw)
	} else {
		body = s.renderQuestion(cw)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *QuizScreen) renderQuestion(cw int) string {
	q := s.session.Current()
	pos, total := s.session.Position(), s.session.Total()

	var sections []string

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("السؤال %d من %d", pos+1, total))
	sections = append(sections, counter)
	sections = append(sections, components.NewProgressBar("", float64(pos+1)/float64(total), false, cw).View())
	sections = append(sections, "")

	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Right).
		Bold(true).
		Foreground(theme.Text).
		Render(q.Prompt))
	sections = append(sections, "")
	sections = append(sections, s.choice.View())

	if a := s.session.CurrentAnswer(); a != nil {
		var verdict string
		if a.IsCorrect {
			verdict = theme.Correct.Render(correctLabel)
		} else {
			verdict = theme.Incorrect.Render(incorrectLabel)
		}
		explanation := lipgloss.NewStyle().
			Width(cw - 4).
			Align(lipgloss.Right).
			Foreground(theme.Text).
			Render(q.Explanation)
		sections = append(sections, theme.Card.Width(cw).Render(verdict+"\n"+explanation))
	}

	next := nextLabel
	if s.session.IsLast() {
		next = resultsLabel
	}
	sections = append(sections, "", components.ButtonRow(
		components.NewButton("←", prevLabel, pos > 0),
		components.NewButton("→", next, s.session.CurrentAnswer() != nil),
	))

	return strings.Join(sections, "\n")
}

func (s *QuizScreen) renderResults(cw int) string {
	pct := s.session.Percentage()
	band := engine.GradeBand(pct)

	title := theme.Title.Width(cw).Render("نتائج الاختبار")
	score := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(bandColor(band)).
		Render(fmt.Sprintf("%d%%\n%s", pct, band.Label()))
	message := theme.Subtitle.Width(cw).Render(band.Message())

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Render(theme.Correct.Render(fmt.Sprintf("%d", s.session.Score()))+"\nإجابات صحيحة"),
		"  ",
		theme.Card.Render(theme.Incorrect.Render(fmt.Sprintf("%d", s.session.Incorrect()))+"\nإجابات خاطئة"),
	)

	buttons := components.ButtonRow(
		components.NewButton("R", "إعادة الاختبار", true),
		components.NewButton("X", "إغلاق", true),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		title, "", score, message, "", stats, "", buttons,
	)
}

func bandColor(b engine.Band) color.Color {
	switch b {
	case engine.BandExcellent:
		return theme.Success
	case engine.BandVeryGood:
		return theme.Primary
	case engine.BandGood:
		return theme.Warning
	default:
		return theme.Error
	}
}
