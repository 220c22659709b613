package home

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/router"
	"github.com/abhisek/hayakil/internal/screens/placeholder"
	quizscreen "github.com/abhisek/hayakil/internal/screens/quiz"
	"github.com/abhisek/hayakil/internal/screens/simulator"
	"github.com/abhisek/hayakil/internal/selector"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newHome(initial catalog.TopicID) *HomeScreen {
	sel := selector.New(catalog.Default(), initial)
	return New(sel, simulator.Timing{Step: time.Millisecond, Hold: time.Millisecond}, nil)
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg
}

func TestNavigation(t *testing.T) {
	h := newHome(catalog.TopicArrays)

	h.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, catalog.TopicArrays, h.Selector().ActiveID(), "clamped at first topic")

	h.Update(specialKey(tea.KeyRight))
	assert.Equal(t, catalog.TopicLinkedList, h.Selector().ActiveID())

	h.Update(keyPress('8'))
	assert.Equal(t, catalog.TopicBST, h.Selector().ActiveID())
	assert.Equal(t, 1.0, h.Selector().Progress())

	h.Update(keyPress('9'))
	assert.Equal(t, catalog.TopicBST, h.Selector().ActiveID())

	h.Update(keyPress('h'))
	assert.Equal(t, catalog.TopicTrees, h.Selector().ActiveID())
}

func TestStartQuiz(t *testing.T) {
	h := newHome(catalog.TopicArrays)
	_, cmd := h.Update(keyPress('t'))
	msg := pushed(t, cmd)

	qs, ok := msg.Screen.(*quizscreen.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 5, qs.Session().Total())
}

func TestStartQuiz_UnavailableIgnored(t *testing.T) {
	h := newHome(catalog.TopicStack)
	_, cmd := h.Update(keyPress('t'))
	assert.Nil(t, cmd)
}

func TestOpenSimulator(t *testing.T) {
	h := newHome(catalog.TopicQueue)
	_, cmd := h.Update(keyPress('v'))
	msg := pushed(t, cmd)
	_, ok := msg.Screen.(*simulator.SimulatorScreen)
	assert.True(t, ok)
}

func TestOpenSimulator_BSTPlaceholder(t *testing.T) {
	h := newHome(catalog.TopicBST)
	_, cmd := h.Update(keyPress('v'))
	msg := pushed(t, cmd)
	_, ok := msg.Screen.(*placeholder.PlaceholderScreen)
	assert.True(t, ok)
}

func TestScrollResetsOnTopicChange(t *testing.T) {
	h := newHome(catalog.TopicArrays)
	h.View(100, 20)
	for range 5 {
		h.Update(specialKey(tea.KeyDown))
	}
	h.View(100, 20)
	assert.Positive(t, h.scrollOffset)

	h.Update(specialKey(tea.KeyRight))
	assert.Zero(t, h.scrollOffset)
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		offset, total, height, want int
	}{
		{0, 10, 5, 0},
		{3, 10, 5, 3},
		{9, 10, 5, 5},
		{2, 3, 5, 0},
		{-1, 10, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampOffset(tt.offset, tt.total, tt.height), "%+v", tt)
	}
}

func TestKeyHintsFollowQuizAvailability(t *testing.T) {
	has := func(h *HomeScreen) bool {
		for _, k := range h.KeyHints() {
			if k.Key == "T" {
				return true
			}
		}
		return false
	}
	assert.True(t, has(newHome(catalog.TopicArrays)))
	assert.False(t, has(newHome(catalog.TopicBST)))
}
