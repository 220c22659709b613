// Package selector tracks which course topic is active.
package selector

import "github.com/abhisek/hayakil/internal/catalog"

// Selector holds the active topic over a catalog.
type Selector struct {
	cat    *catalog.Catalog
	active int
}

// New returns a selector with initial active. An id absent from the
// catalog falls back to the first topic.
func New(cat *catalog.Catalog, initial catalog.TopicID) *Selector {
	s := &Selector{cat: cat}
	if i := cat.Ordinal(initial); i >= 0 {
		s.active = i
	}
	return s
}

// Select makes id the active topic. It reports whether the active
// topic changed; re-selecting the active topic or an unknown id does nothing.
func (s *Selector) Select(id catalog.TopicID) bool {
	i := s.cat.Ordinal(id)
	if i < 0 || i == s.active {
		return false
	}
	s.active = i
	return true
}

// SelectAt selects by display position.
func (s *Selector) SelectAt(ordinal int) bool {
	if ordinal < 0 || ordinal >= s.cat.Len() {
		return false
	}
	return s.Select(s.cat.At(ordinal).ID)
}

// Next moves to the following topic, stopping at the last one.
func (s *Selector) Next() bool {
	return s.SelectAt(s.active + 1)
}

// Prev moves to the preceding topic, stopping at the first one.
func (s *Selector) Prev() bool {
	return s.SelectAt(s.active - 1)
}

// Active returns the full descriptor of the active topic.
func (s *Selector) Active() catalog.Topic {
	return s.cat.At(s.active)
}

func (s *Selector) ActiveID() catalog.TopicID {
	return s.cat.At(s.active).ID
}

// Ordinal is the active topic's display position.
func (s *Selector) Ordinal() int {
	return s.active
}

// Progress is (ordinal+1)/total: never zero, exactly 1 on the last topic.
func (s *Selector) Progress() float64 {
	return float64(s.active+1) / float64(s.cat.Len())
}

// QuizAvailable reports whether the active topic has questions.
func (s *Selector) QuizAvailable() bool {
	return s.Active().HasQuiz()
}

// Catalog returns the underlying catalog.
func (s *Selector) Catalog() *catalog.Catalog {
	return s.cat
}
