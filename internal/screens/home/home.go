package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hayakil/internal/content"
	"github.com/abhisek/hayakil/internal/router"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/screens/placeholder"
	quizscreen "github.com/abhisek/hayakil/internal/screens/quiz"
	"github.com/abhisek/hayakil/internal/screens/simulator"
	"github.com/abhisek/hayakil/internal/selector"
	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// HomeScreen shows the topic navigation and the active topic's page.
type HomeScreen struct {
	sel          *selector.Selector
	timing       simulator.Timing
	log          *zap.Logger
	scrollOffset int
	lastHeight   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen over sel.
func New(sel *selector.Selector, timing simulator.Timing, log *zap.Logger) *HomeScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &HomeScreen{sel: sel, timing: timing, log: log}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	t := h.sel.Active()
	return t.Icon + " " + t.Name
}

// Selector exposes the topic selector.
func (h *HomeScreen) Selector() *selector.Selector {
	return h.sel
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	key := kmsg.String()
	switch key {
	case "right", "l":
		h.changed(h.sel.Next())
	case "left", "h":
		h.changed(h.sel.Prev())
	case "up", "k":
		if h.scrollOffset > 0 {
			h.scrollOffset--
		}
	case "down", "j":
		h.scrollOffset++
	case "pgup":
		h.scrollOffset = max(0, h.scrollOffset-h.page())
	case "pgdown":
		h.scrollOffset += h.page()
	case "t":
		return h, h.startQuiz()
	case "v":
		return h, h.openSimulator()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			h.changed(h.sel.SelectAt(int(key[0] - '1')))
		}
	}
	return h, nil
}

func (h *HomeScreen) changed(ok bool) {
	if !ok {
		return
	}
	h.scrollOffset = 0
	h.log.Debug("topic selected", zap.String("topic", string(h.sel.ActiveID())))
}

func (h *HomeScreen) page() int {
	return max(1, h.lastHeight-1)
}

// startQuiz pushes a quiz for the active topic. Topics without questions
// ignore the request.
func (h *HomeScreen) startQuiz() tea.Cmd {
	if !h.sel.QuizAvailable() {
		return nil
	}
	qs, err := quizscreen.New(h.sel.Active(), h.log)
	if err != nil {
		h.log.Error("start quiz", zap.Error(err))
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}

func (h *HomeScreen) openSimulator() tea.Cmd {
	topic := h.sel.Active()
	var next screen.Screen
	if simulator.Available(topic.ID) {
		sim, err := simulator.New(topic, h.timing)
		if err != nil {
			h.log.Error("open simulator", zap.Error(err))
			return nil
		}
		next = sim
	} else {
		next = placeholder.New(topic.Icon + " " + topic.Name)
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 110)

	labels := make([]string, 0, h.sel.Catalog().Len())
	for _, t := range h.sel.Catalog().Topics() {
		labels = append(labels, t.Icon+" "+t.Name)
	}
	tabs := components.Tabs{Labels: labels, Active: h.sel.Ordinal()}.View(cw)
	progress := components.NewProgressBar("التقدم", h.sel.Progress(), true, cw).View()
	actions := h.renderActions()

	top := lipgloss.JoinVertical(lipgloss.Left, tabs, "", progress, "", actions, "")
	bodyHeight := max(1, height-lipgloss.Height(top))
	h.lastHeight = bodyHeight

	lines := strings.Split(content.Render(h.sel.ActiveID(), cw), "\n")
	h.scrollOffset = clampOffset(h.scrollOffset, len(lines), bodyHeight)
	end := min(len(lines), h.scrollOffset+bodyHeight)
	body := strings.Join(lines[h.scrollOffset:end], "\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, top, body))
}

// clampOffset keeps the scroll window inside the page.
func clampOffset(offset, total, height int) int {
	return max(0, min(offset, total-height))
}

func (h *HomeScreen) renderActions() string {
	quizLabel := "اختبار"
	if !h.sel.QuizAvailable() {
		quizLabel = content.QuizSoonLabel
	}
	row := components.ButtonRow(
		components.NewButton("T", quizLabel, h.sel.QuizAvailable()),
		components.NewButton("V", "المحاكي التفاعلي", true),
	)
	if h.sel.QuizAvailable() {
		return row
	}
	return row + "  " + theme.Hint.Render("لا توجد أسئلة لهذا الموضوع بعد")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "الموضوع"},
		{Key: "1-8", Description: "انتقال"},
		{Key: "↑↓", Description: "تمرير"},
		{Key: "V", Description: "المحاكي"},
	}
	if h.sel.QuizAvailable() {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "اختبار"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "خروج"})
}
