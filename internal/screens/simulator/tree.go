package simulator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/traversal"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// stepMsg advances traversal run by one node.
type stepMsg struct{ run int }

// clearMsg removes the final highlight of run.
type clearMsg struct{ run int }

var (
	nodeStyle = cellStyle.Width(5)

	litNodeStyle = theme.Highlight.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Warning).
			Width(5).
			Align(lipgloss.Center)
)

// treeWidget animates pre, in and post order walks of the sample tree.
type treeWidget struct {
	player *traversal.Player
	timing Timing
}

func newTreeWidget(timing Timing) *treeWidget {
	return &treeWidget{player: traversal.NewPlayer(), timing: timing}
}

func (w *treeWidget) Init() tea.Cmd {
	return nil
}

func (w *treeWidget) Heading() string {
	return "🌳 محاكي الشجرة الثنائية"
}

func (w *treeWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "p":
			return w.start(traversal.PreOrder)
		case "i":
			return w.start(traversal.InOrder)
		case "o":
			return w.start(traversal.PostOrder)
		}
	case stepMsg:
		applied, done := w.player.Step(msg.run)
		if !applied {
			return nil
		}
		if done {
			return tick(w.timing.Hold, clearMsg{run: msg.run})
		}
		return tick(w.timing.Step, stepMsg{run: msg.run})
	case clearMsg:
		w.player.ClearHighlight(msg.run)
	}
	return nil
}

func (w *treeWidget) start(order traversal.Order) tea.Cmd {
	run := w.player.Start(order)
	return func() tea.Msg { return stepMsg{run: run} }
}

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Close cancels the animation in flight.
func (w *treeWidget) Close() {
	w.player.Cancel()
}

func (w *treeWidget) View(width int) string {
	lit, hasLit := w.player.Highlighted()

	rows := make([]string, 0, 4)
	for _, level := range traversal.Levels() {
		nodes := make([]string, 0, len(level))
		for _, id := range level {
			n, _ := traversal.NodeAt(id)
			style := nodeStyle
			if hasLit && id == lit {
				style = litNodeStyle
			}
			if len(nodes) > 0 {
				nodes = append(nodes, "   ")
			}
			nodes = append(nodes, style.Render(strconv.Itoa(n.Value)))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, nodes...)
		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
	}

	status := dim("اختر طريقة الاجتياز لبدء المحاكاة.")
	if result := w.player.Result(); len(result) > 0 || w.player.Animating() {
		vals := make([]string, len(result))
		for i, v := range result {
			vals[i] = strconv.Itoa(v)
		}
		status = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("%s: [%s]", w.player.Order().Label(), strings.Join(vals, ", ")))
	}

	return joinLines(
		strings.Join(rows, "\n"),
		status,
	)
}

func (w *treeWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P", Description: "Pre-order"},
		{Key: "I", Description: "In-order"},
		{Key: "O", Description: "Post-order"},
	}
}
