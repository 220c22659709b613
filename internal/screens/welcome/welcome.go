package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/router"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// The structures the splash cycles through.
var structureFrames = []string{
	"[ 45 | 23 | 67 | 12 ]",
	"( 10 ) → ( 20 ) → ( 30 ) → NULL",
	"NULL ← ( 10 ) ⇄ ( 20 ) → NULL",
	"┃ 30 ┃ ← Top",
	"Front → 10 20 30 ← Rear",
	"    2\n  ╱   ╲\n 0     3",
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	frame := structureFrames[(w.tickCount/5)%len(structureFrames)]
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).Render(frame))

	if w.elapsed >= phase1End {
		sections = append(sections, "", RenderBanner(width))
	}

	if w.elapsed >= phase2End {
		title := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(layout.AppTitle)
		subtitle := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-4, 70)).
			Align(lipgloss.Center).
			Render(layout.AppSubtitle)
		author := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(layout.Author)
		sections = append(sections, "", title, subtitle, "", author)
	}

	sections = append(sections, "")
	hint := theme.Hint.Render("اضغط أي مفتاح للمتابعة")
	sections = append(sections, hint)

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Join(sections, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
