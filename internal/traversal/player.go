package traversal

import "sync/atomic"

// runs issues run tokens. Tokens are unique across players, so a tick
// scheduled by a closed screen never matches a later player's run.
var runs atomic.Int64

func nextRun() int {
	return int(runs.Add(1))
}

// Player runs one traversal animation at a time. Each Start issues a new
// run token; steps and clears carrying an older token are ignored, so a
// restarted or cancelled animation never mutates state.
type Player struct {
	run         int
	seq         []int
	pos         int
	result      []int
	highlighted int
	animating   bool
	order       Order
}

// NewPlayer returns an idle player with nothing highlighted.
func NewPlayer() *Player {
	return &Player{highlighted: none}
}

// Start cancels any run in flight and begins order from the root.
func (p *Player) Start(order Order) int {
	p.run = nextRun()
	p.order = order
	p.seq = Sequence(order)
	p.pos = 0
	p.result = nil
	p.highlighted = none
	p.animating = true
	return p.run
}

// Cancel invalidates the current run.
func (p *Player) Cancel() {
	p.run = nextRun()
	p.animating = false
	p.highlighted = none
}

// Step visits the next node of run. It reports whether the step applied
// and whether the walk is now finished.
func (p *Player) Step(run int) (applied, done bool) {
	if run != p.run || !p.animating {
		return false, false
	}
	id := p.seq[p.pos]
	p.highlighted = id
	p.result = append(p.result, tree[id].Value)
	p.pos++
	if p.pos == len(p.seq) {
		p.animating = false
		return true, true
	}
	return true, false
}

// ClearHighlight removes the final highlight of a finished run.
func (p *Player) ClearHighlight(run int) bool {
	if run != p.run || p.animating {
		return false
	}
	p.highlighted = none
	return true
}

// Run returns the current run token.
func (p *Player) Run() int {
	return p.run
}

func (p *Player) Animating() bool {
	return p.animating
}

// Highlighted returns the highlighted node id, or false when none is lit.
func (p *Player) Highlighted() (int, bool) {
	return p.highlighted, p.highlighted != none
}

// Result returns the values visited so far.
func (p *Player) Result() []int {
	return append([]int(nil), p.result...)
}

// Order returns the order of the most recent run.
func (p *Player) Order() Order {
	return p.order
}
