package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/hayakil/internal/catalog"
	"github.com/abhisek/hayakil/internal/config"
	"github.com/abhisek/hayakil/internal/screens/home"
	quizscreen "github.com/abhisek/hayakil/internal/screens/quiz"
	"github.com/abhisek/hayakil/internal/screens/welcome"
)

// update feeds msg into m and then the message its command produces.
func update(m AppModel, msg tea.Msg) AppModel {
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(AppModel)
		}
	}
	return m
}

func skipWelcome() *config.Config {
	cfg := config.Default()
	cfg.UI.SkipWelcome = true
	return cfg
}

func TestStartsOnWelcome(t *testing.T) {
	m, err := newAppModel(Options{})
	require.NoError(t, err)
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.NotNil(t, m.Init())
}

func TestWelcomeReplacedByHome(t *testing.T) {
	m, _ := newAppModel(Options{})
	m = update(m, tea.KeyPressMsg{Code: 'a', Text: "a"})

	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestStartTopicOption(t *testing.T) {
	m, err := newAppModel(Options{Config: skipWelcome(), StartTopic: catalog.TopicTrees})
	require.NoError(t, err)
	h, ok := m.router.Active().(*home.HomeScreen)
	require.True(t, ok)
	assert.Equal(t, catalog.TopicTrees, h.Selector().ActiveID())
}

func TestOpenQuiz(t *testing.T) {
	m, err := newAppModel(Options{StartTopic: catalog.TopicArrays, OpenQuiz: true})
	require.NoError(t, err)
	_, ok := m.router.Active().(*quizscreen.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 2, m.router.Depth())

	m = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	_, ok = m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestOpenQuiz_NoQuestions(t *testing.T) {
	_, err := newAppModel(Options{StartTopic: catalog.TopicBST, OpenQuiz: true})
	assert.Error(t, err)
}

func TestEscAtRootIsNoop(t *testing.T) {
	m, _ := newAppModel(Options{Config: skipWelcome()})
	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, next.(AppModel).router.Depth())
}

func TestQuizXAndEscReachSameState(t *testing.T) {
	open := func() AppModel {
		m, err := newAppModel(Options{StartTopic: catalog.TopicArrays, OpenQuiz: true})
		require.NoError(t, err)
		return m
	}

	byX := update(open(), tea.KeyPressMsg{Code: 'x', Text: "x"})
	byEsc := update(open(), tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.Equal(t, byX.router.Depth(), byEsc.router.Depth())
	_, ok := byX.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newAppModel(Options{Config: skipWelcome()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestWindowSize(t *testing.T) {
	m, _ := newAppModel(Options{Config: skipWelcome()})
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.View().AltScreen)
}
