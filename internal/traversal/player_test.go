package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_FullRun(t *testing.T) {
	p := NewPlayer()
	run := p.Start(PreOrder)
	assert.True(t, p.Animating())

	want := Sequence(PreOrder)
	for i := range want {
		applied, done := p.Step(run)
		assert.True(t, applied)
		assert.Equal(t, i == len(want)-1, done)
		id, lit := p.Highlighted()
		assert.True(t, lit)
		assert.Equal(t, want[i], id)
	}
	assert.False(t, p.Animating())
	assert.Equal(t, want, p.Result())

	assert.True(t, p.ClearHighlight(run))
	_, lit := p.Highlighted()
	assert.False(t, lit)
}

func TestPlayer_RestartDropsStaleSteps(t *testing.T) {
	p := NewPlayer()
	first := p.Start(PreOrder)
	p.Step(first)
	p.Step(first)

	second := p.Start(InOrder)
	assert.NotEqual(t, first, second)
	assert.Empty(t, p.Result())

	applied, _ := p.Step(first)
	assert.False(t, applied, "step from cancelled run must be dropped")
	assert.Empty(t, p.Result())

	p.Step(second)
	assert.Equal(t, []int{6}, p.Result())
}

func TestPlayer_CancelStopsRun(t *testing.T) {
	p := NewPlayer()
	run := p.Start(PostOrder)
	p.Step(run)
	p.Cancel()

	assert.False(t, p.Animating())
	applied, _ := p.Step(run)
	assert.False(t, applied)
	_, lit := p.Highlighted()
	assert.False(t, lit)
}

func TestPlayer_StaleClearIgnored(t *testing.T) {
	p := NewPlayer()
	first := p.Start(InOrder)
	for {
		if _, done := p.Step(first); done {
			break
		}
	}
	second := p.Start(PreOrder)
	p.Step(second)

	assert.False(t, p.ClearHighlight(first))
	id, lit := p.Highlighted()
	assert.True(t, lit)
	assert.Equal(t, 2, id)
}

func TestPlayer_ClearWhileAnimatingIgnored(t *testing.T) {
	p := NewPlayer()
	run := p.Start(PreOrder)
	p.Step(run)
	assert.False(t, p.ClearHighlight(run))
}

func TestPlayer_TokensUniqueAcrossPlayers(t *testing.T) {
	a := NewPlayer()
	staleRun := a.Start(PreOrder)
	a.Cancel()

	b := NewPlayer()
	run := b.Start(PreOrder)
	assert.NotEqual(t, staleRun, run)

	applied, _ := b.Step(staleRun)
	assert.False(t, applied, "token from another player must be dropped")
	assert.Empty(t, b.Result())
	assert.False(t, b.ClearHighlight(staleRun))
}
