package searcher

import (
	"math"
	"sync"

	"tak/game"
)

// decision is one node of the search tree. Tak is fully deterministic, so
// every node is a decision node. Nodes are shared by the worker goroutines
// running simulations; a virtual loss discourages workers from piling onto
// the same branch.
type decision struct {
	sync.RWMutex
	parent   *decision
	player   string
	moves    []game.Move
	children []*decision
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, state game.State) *decision {
	moves := state.LegalMoves()
	return &decision{
		parent:   parent,
		player:   state.Player(),
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// SelectOrExpand either adds a child for the next unexplored move or selects
// the child with the best UCB1 score. expanded is true when a new child was
// added; a terminal node returns itself.
func (d *decision) SelectOrExpand(state game.State) (child *decision, childState game.State, expanded bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.children) < len(d.moves) { // Expandable node
		child, childState := d.addChild(state)
		child.applyLoss()
		return child, childState, true
	}

	// Fully expanded node
	ith := d.pickChild()
	child = d.children[ith]
	child.applyLoss()
	return child, state.Play(d.moves[ith]), false
}

func (d *decision) addChild(state game.State) (*decision, game.State) {
	move := d.moves[len(d.children)]
	childState := state.Play(move)
	child := newDecision(d, childState)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild() int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}
	normalizer := CSquared * math.Log(d.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(normalizer float64) float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb1(d.rewards, d.visits, normalizer)
}

// Backup folds a rollout outcome into the node, undoing the virtual loss
// applied on the way down, and returns the parent to continue the walk.
// Rewards are credited from the perspective of the player whose move led
// into the node, so a parent maximizing child scores favors its own mover.
func (d *decision) Backup(refPlayer string, score float64) *decision {
	d.Lock()
	defer d.Unlock()

	perspective := d.player
	if d.parent != nil { // Root nodes never received a loss
		d.reverseLoss()
		perspective = d.parent.player
	}
	d.rewards += computeReward(refPlayer, score, perspective)
	d.visits++
	return d.parent
}

func (d *decision) value() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// findBestMove returns the most-visited root move.
func (d *decision) findBestMove() game.Move {
	if len(d.children) == 0 {
		panic("node has no children")
	}
	bestIndex := 0
	maxValue := d.children[0].value()
	for i, child := range d.children[1:] {
		if v := child.value(); v > maxValue {
			maxValue = v
			bestIndex = i + 1
		}
	}
	return d.moves[bestIndex]
}
