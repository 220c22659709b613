package simulator

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
)

// Timing paces the tree traversal animation.
type Timing struct {
	Step time.Duration
	Hold time.Duration
}

// widget is one interactive simulator.
type widget interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
	Heading() string
	KeyHints() []layout.KeyHint
}

// SimulatorScreen hosts the simulator of one topic.
type SimulatorScreen struct {
	topic  catalog.Topic
	widget widget
}

var _ screen.Screen = (*SimulatorScreen)(nil)
var _ screen.KeyHintProvider = (*SimulatorScreen)(nil)
var _ screen.Closer = (*SimulatorScreen)(nil)

// Available reports whether id has an interactive simulator.
func Available(id catalog.TopicID) bool {
	return id.Valid() && id != catalog.TopicBST
}

// New builds the simulator for topic.
func New(topic catalog.Topic, timing Timing) (*SimulatorScreen, error) {
	var w widget
	switch topic.ID {
	case catalog.TopicArrays:
		w = newArrayWidget()
	case catalog.TopicStack:
		w = newStackWidget()
	case catalog.TopicQueue:
		w = newQueueWidget()
	case catalog.TopicLinkedList:
		w = newListWidget(false)
	case catalog.TopicDoubly:
		w = newListWidget(true)
	case catalog.TopicCircular:
		w = newCircularWidget()
	case catalog.TopicTrees:
		w = newTreeWidget(timing)
	default:
		return nil, fmt.Errorf("no simulator for topic %q", topic.ID)
	}
	return &SimulatorScreen{topic: topic, widget: w}, nil
}

func (s *SimulatorScreen) Init() tea.Cmd {
	return s.widget.Init()
}

func (s *SimulatorScreen) Title() string {
	return s.topic.Icon + " " + s.topic.Name
}

func (s *SimulatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, s.widget.Update(msg)
}

func (s *SimulatorScreen) View(width, height int) string {
	cw := min(width-4, 100)
	heading := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Primary).
		Render(s.widget.Heading())
	body := lipgloss.JoinVertical(lipgloss.Center, heading, "", s.widget.View(cw))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SimulatorScreen) KeyHints() []layout.KeyHint {
	return append(s.widget.KeyHints(), layout.KeyHint{Key: "Esc", Description: "رجوع"})
}

// Close stops any animation the widget has in flight.
func (s *SimulatorScreen) Close() {
	if c, ok := s.widget.(screen.Closer); ok {
		c.Close()
	}
}
