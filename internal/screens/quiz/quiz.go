package quiz

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/hayakil/internal/catalog"
	engine "github.com/abhisek/hayakil/internal/quiz"
	"github.com/abhisek/hayakil/internal/router"
	"github.com/abhisek/hayakil/internal/screen"
	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/layout"
)

// QuizScreen runs one quiz session over a topic's questions.
type QuizScreen struct {
	topic   catalog.Topic
	session *engine.Session
	choice  components.MultiChoice
	log     *zap.Logger
	closed  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New starts a quiz for topic. It fails if the topic has no questions.
func New(topic catalog.Topic, log *zap.Logger) (*QuizScreen, error) {
	session, err := engine.NewSession(topic.Questions)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &QuizScreen{
		topic:   topic,
		session: session,
		log:     log.With(zap.String("topic", string(topic.ID))),
	}
	s.syncChoice()
	s.log.Info("quiz started", zap.String("session_id", session.ID), zap.Int("questions", session.Total()))
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "اختبار " + s.topic.Name
}

// Session exposes the running session.
func (s *QuizScreen) Session() *engine.Session {
	return s.session
}

// syncChoice rebuilds the option list for the current position.
func (s *QuizScreen) syncChoice() {
	q := s.session.Current()
	s.choice = components.NewMultiChoice(q.Options, q.Correct)
	if a := s.session.CurrentAnswer(); a != nil {
		s.choice = s.choice.Lock(a.Selected)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.OptionChosenMsg:
		s.selectOption(msg.Index)
		return s, nil
	case tea.KeyPressMsg:
		if s.session.ShowingResults() {
			return s.handleResultsKey(msg)
		}
		return s.handleQuestionKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) selectOption(i int) {
	if !s.session.SelectOption(i) {
		return
	}
	a := s.session.CurrentAnswer()
	s.choice = s.choice.Lock(a.Selected)
	s.log.Debug("answer recorded",
		zap.String("session_id", s.session.ID),
		zap.Int("position", s.session.Position()),
		zap.Int("selected", a.Selected),
		zap.Bool("correct", a.IsCorrect),
	)
}

func (s *QuizScreen) handleQuestionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "right", "n":
		// The engine advances unconditionally; the screen waits for an answer.
		if s.session.CurrentAnswer() == nil {
			return s, nil
		}
		s.session.Advance()
		if s.session.ShowingResults() {
			s.logResults()
			return s, nil
		}
		s.syncChoice()
		return s, nil
	case "left", "p":
		s.session.Retreat()
		s.syncChoice()
		return s, nil
	case "x":
		return s, closeQuiz
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleResultsKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		s.session = s.session.Retake()
		s.syncChoice()
		s.log.Info("quiz retaken", zap.String("session_id", s.session.ID))
	case "x", "enter":
		return s, closeQuiz
	}
	return s, nil
}

func closeQuiz() tea.Msg {
	return router.PopScreenMsg{}
}

func (s *QuizScreen) logResults() {
	pct := s.session.Percentage()
	s.log.Info("quiz finished",
		zap.String("session_id", s.session.ID),
		zap.Int("score", s.session.Score()),
		zap.Int("total", s.session.Total()),
		zap.Int("percentage", pct),
		zap.String("band", engine.GradeBand(pct).Label()),
	)
}

// Close discards the session when the screen leaves the stack.
func (s *QuizScreen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.log.Info("quiz closed",
		zap.String("session_id", s.session.ID),
		zap.Stringer("state", s.session.State()),
		zap.Int("answered", s.session.Answered()),
	)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.ShowingResults() {
		return []layout.KeyHint{
			{Key: "R", Description: "إعادة الاختبار"},
			{Key: "X/Esc", Description: "إغلاق"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "اختيار"},
		{Key: "Enter", Description: "تأكيد"},
	}
	if s.session.Position() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "السابق"})
	}
	if s.session.CurrentAnswer() != nil {
		next := "التالي"
		if s.session.IsLast() {
			next = "عرض النتائج"
		}
		hints = append(hints, layout.KeyHint{Key: "→", Description: next})
	}
	return append(hints, layout.KeyHint{Key: "X/Esc", Description: "إغلاق"})
}
