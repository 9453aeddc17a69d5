package searcher

import (
	"math"

	"tictac/game"

	"golang.org/x/exp/rand"
)

// decision is one node of the search tree. rewards accumulates simulated
// outcomes from the perspective of mover, the player whose move produced this
// state; the parent pointer is only walked during backup and never owns the
// node.
type decision struct {
	parent     *decision
	hash       game.StateHash
	mover      string
	unexplored []game.Move
	explored   []game.Move
	children   []*decision
	rewards    float64
	visits     int
}

func newDecision(parent *decision, state game.State) *decision {
	var unexplored []game.Move
	if !state.IsTerminal() {
		unexplored = state.LegalMoves()
	}

	return &decision{
		parent:     parent,
		hash:       state.Hash(),
		mover:      game.Opponent(state.Player()),
		unexplored: unexplored,
	}
}

// selectOrExpand advances the tree walk by one ply: it expands a random
// untried move if one remains, otherwise descends to the max-UCT child.
// selected is false when the walk must stop here, either because a child was
// just added or because the node is terminal (child == d, state unchanged).
func (d *decision) selectOrExpand(state game.State, cSquared float64, rng *rand.Rand) (child *decision, childState game.State, selected bool) {
	if len(d.unexplored) == 0 && len(d.explored) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.unexplored) > 0 { // Expandable node
		child, childState := d.addChild(state, rng)
		return child, childState, false
	}

	// Fully expanded node
	ith := d.pickChild(cSquared, rng)
	return d.children[ith], state.Play(d.explored[ith]), true
}

func (d *decision) addChild(state game.State, rng *rand.Rand) (*decision, game.State) {
	// Uniform-random untried move, to avoid move-order bias
	ith := rng.Intn(len(d.unexplored))
	move := d.unexplored[ith]
	last := len(d.unexplored) - 1
	d.unexplored[ith] = d.unexplored[last]
	d.unexplored = d.unexplored[:last]

	childState := state.Play(move)
	child := newDecision(d, childState)
	d.explored = append(d.explored, move)
	d.children = append(d.children, child)
	return child, childState
}

func (d *decision) pickChild(cSquared float64, rng *rand.Rand) int {
	if d.visits == 0 {
		panic("node has children but no visits")
	}
	policy := newUCT(cSquared, float64(d.visits))

	best := math.Inf(-1)
	var ties []int
	for ith, child := range d.children {
		score := policy.evaluate(child.rewards, float64(child.visits))
		if score > best {
			best = score
			ties = ties[:0]
		}
		if score == best {
			ties = append(ties, ith)
		}
	}
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}

// findBestMove returns the most-visited move, the robust choice compared to
// noisy small-sample win rates. Exact ties break uniformly at random.
func (d *decision) findBestMove(rng *rand.Rand) game.Move {
	if len(d.children) == 0 {
		panic("node has no children")
	}

	maxVisits := -1
	var ties []int
	for ith, child := range d.children {
		if child.visits > maxVisits {
			maxVisits = child.visits
			ties = ties[:0]
		}
		if child.visits == maxVisits {
			ties = append(ties, ith)
		}
	}
	if len(ties) == 1 {
		return d.explored[ties[0]]
	}
	return d.explored[ties[rng.Intn(len(ties))]]
}

// selectThenExpand walks from the root to a frontier node, expanding one new
// child on the way out unless the frontier is terminal.
func selectThenExpand(root *decision, state game.State, cSquared float64, rng *rand.Rand) (*decision, game.State) {
	node, nodeState := root, state
	for {
		child, childState, selected := node.selectOrExpand(nodeState, cSquared, rng)
		if !selected {
			return child, childState
		}
		node, nodeState = child, childState
	}
}

// backup walks from the frontier to the root, crediting each node with the
// simulated outcome from its mover's perspective.
func backup(frontier *decision, winner string) {
	for node := frontier; node != nil; node = node.parent {
		node.visits++
		node.rewards += reward(winner, node.mover)
	}
}
