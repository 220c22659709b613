package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/hayakil/internal/catalog"
)

// State is the quiz engine's phase.
type State int

const (
	StateInProgress State = iota
	StateShowingResults
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateShowingResults:
		return "showing_results"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Answer is the learner's recorded choice for one question.
type Answer struct {
	Selected  int
	IsCorrect bool
}

// Session walks a learner through a fixed question list.
// A position's answer is set at most once; Retake starts over.
type Session struct {
	ID        string
	Questions []catalog.Question

	answers []*Answer
	pos     int
	state   State
}

// NewSession starts a quiz over questions at position 0 with nothing answered.
func NewSession(questions []catalog.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("quiz needs at least one question")
	}
	return &Session{
		ID:        uuid.New().String(),
		Questions: questions,
		answers:   make([]*Answer, len(questions)),
	}, nil
}

// SelectOption records the answer for the current position.
// It is a no-op once the position is answered or results are showing.
// It panics if index is not a valid option of the current question.
func (s *Session) SelectOption(index int) bool {
	if s.state == StateShowingResults || s.answers[s.pos] != nil {
		return false
	}
	q := s.Questions[s.pos]
	if index < 0 || index >= len(q.Options) {
		panic(fmt.Sprintf("quiz: option %d out of range for question %d (%d options)", index, s.pos, len(q.Options)))
	}
	s.answers[s.pos] = &Answer{Selected: index, IsCorrect: q.IsCorrect(index)}
	return true
}

// Advance moves to the next position, or shows results from the last one.
func (s *Session) Advance() {
	if s.state == StateShowingResults {
		return
	}
	if s.pos < len(s.Questions)-1 {
		s.pos++
		return
	}
	s.state = StateShowingResults
}

// Retreat moves back one position. No-op at the first question.
func (s *Session) Retreat() {
	if s.state == StateShowingResults || s.pos == 0 {
		return
	}
	s.pos--
}

// Retake returns a fresh session over the same questions.
func (s *Session) Retake() *Session {
	fresh, _ := NewSession(s.Questions)
	return fresh
}

// State returns the engine phase.
func (s *Session) State() State {
	return s.state
}

// ShowingResults reports whether the session has left the question flow.
func (s *Session) ShowingResults() bool {
	return s.state == StateShowingResults
}

// Position is the zero-based cursor.
func (s *Session) Position() int {
	return s.pos
}

func (s *Session) Total() int {
	return len(s.Questions)
}

func (s *Session) IsLast() bool {
	return s.pos == len(s.Questions)-1
}

// Current returns the question at the cursor.
func (s *Session) Current() catalog.Question {
	return s.Questions[s.pos]
}

// CurrentAnswer returns the answer at the current position, or nil.
func (s *Session) CurrentAnswer() *Answer {
	return s.answers[s.pos]
}

// AnswerAt returns the answer recorded at position i, or nil.
func (s *Session) AnswerAt(i int) *Answer {
	return s.answers[i]
}

// Score counts correct answers.
func (s *Session) Score() int {
	n := 0
	for _, a := range s.answers {
		if a != nil && a.IsCorrect {
			n++
		}
	}
	return n
}

// Answered counts positions with a recorded answer.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.answers {
		if a != nil {
			n++
		}
	}
	return n
}

// Incorrect counts answered positions that were wrong.
func (s *Session) Incorrect() int {
	return s.Answered() - s.Score()
}

// Percentage is the score as a whole percent, rounded half up.
func (s *Session) Percentage() int {
	return Percentage(s.Score(), len(s.Questions))
}

// Percentage computes round(100*score/total) with halves rounded up.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}
