package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/config"
	"github.com/abhisek/hayakil/internal/router"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/screens/home"
	quizscreen "github.com/abhisek/hayakil/internal/screens/quiz"
	"github.com/abhisek/hayakil/internal/screens/simulator"
	"github.com/abhisek/hayakil/internal/screens/welcome"
	"github.com/abhisek/hayakil/internal/selector"
	"github.com/abhisek/hayakil/internal/ui/layout"
)

// Options holds the dependencies injected into the application.
type Options struct {
	Catalog *catalog.Catalog
	Config  *config.Config
	Logger  *zap.Logger

	// StartTopic overrides the configured start topic when set.
	StartTopic catalog.TopicID

	// OpenQuiz opens the start topic's quiz on top of the home screen.
	OpenQuiz bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel wires the selector and the first screen from opts.
func newAppModel(opts Options) (AppModel, error) {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := opts.StartTopic
	if start == "" {
		start = cfg.UI.StartTopicID()
	}
	sel := selector.New(cat, start)
	timing := simulator.Timing{Step: cfg.UI.TraversalStep, Hold: cfg.UI.HighlightHold}
	homeScreen := home.New(sel, timing, log)

	m := AppModel{log: log}
	switch {
	case opts.OpenQuiz:
		qs, err := quizscreen.New(sel.Active(), log)
		if err != nil {
			return m, fmt.Errorf("open quiz for %q: %w", sel.ActiveID(), err)
		}
		m.router = router.New(homeScreen)
		m.router.Push(qs)
	case cfg.UI.SkipWelcome:
		m.router = router.New(homeScreen)
	default:
		m.router = router.New(welcome.New(func() screen.Screen { return homeScreen }))
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Info("quit")
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "رجوع"},
			{Key: "Ctrl+C", Description: "خروج"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "خروج"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
