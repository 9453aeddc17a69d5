package searcher

import (
	"errors"
	"time"

	"tictac/game"
	"tictac/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	// ErrNoDecision reports a search from a terminal state: there is no move
	// left to choose among.
	ErrNoDecision = errors.New("searcher: no move to choose on a terminal state")
	// ErrNoBudget reports an engine configured with neither an iteration
	// count nor a duration.
	ErrNoBudget = errors.New("searcher: must specify search iterations or duration")
)

// Segment is one real move played since the previous decision, used to
// re-root the retained tree.
type Segment struct {
	Move      game.Move
	StateHash game.StateHash
}

type Option func(m *MCTS)

// MCTS chooses moves by Monte Carlo Tree Search. It is not safe for
// concurrent use: each FindNextMove call owns the tree exclusively and runs
// to completion. One seeded random source drives expansion order, tie-breaks
// and rollouts, so a fixed seed makes a search reproducible.
type MCTS struct {
	iterations int
	duration   time.Duration
	cSquared   float64
	rollout    Rollout
	rng        *rand.Rand
	root       *decision
	metrics    MetricsCollector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCT exploration constant c.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.cSquared = c * c
		}
	}
}

func WithRollout(policy Rollout) Option {
	return func(m *MCTS) {
		if policy != nil {
			m.rollout = policy
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		cSquared: DefaultExploration * DefaultExploration,
		rollout:  HeuristicRollout{},
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		return nil, ErrNoBudget
	}
	return m, nil
}

// FindNextMove searches from state and returns the most-visited root move.
// lineage lists the real moves played since the previous call so the matching
// subtree can be reused; pass nil to search from a fresh tree. When both an
// iteration count and a duration are configured, the loop stops at whichever
// triggers first; the deadline is checked between iterations only, so a
// simulation in progress always runs to completion.
func (m *MCTS) FindNextMove(state game.State, lineage []Segment) (game.Move, error) {
	if state.IsTerminal() {
		return nil, ErrNoDecision
	}

	m.findRoot(lineage, state)
	m.metrics.Start()

	var deadline time.Time
	if m.duration > 0 {
		deadline = time.Now().Add(m.duration)
	}
	for i := 0; ; i++ {
		if m.iterations > 0 && i >= m.iterations {
			break
		}
		if i > 0 && !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}
		m.simulate(state)
		m.metrics.AddEpisode()
	}

	move := m.root.findBestMove(m.rng)
	metric := m.metrics.Complete()
	log.Debug().
		Stringer("move", move).
		Int("episodes", metric.Episodes).
		Bool("tree_reused", metric.TreeReused).
		Dur("duration", metric.Duration).
		Msg("move decided")
	return move, nil
}

func (m *MCTS) simulate(state game.State) {
	frontier, frontierState := selectThenExpand(m.root, state, m.cSquared, m.rng)
	winner := m.rollout.Simulate(frontierState, m.rng)
	backup(frontier, winner)
}

func (m *MCTS) findRoot(lineage []Segment, state game.State) {
	root := traverse(m.root, lineage)
	if root == nil || root.hash != state.Hash() {
		m.root = newDecision(nil, state)
		m.metrics.SetTreeReset(true)
	} else {
		root.parent = nil
		m.root = root
		m.metrics.SetTreeReset(false)
	}
}

func traverse(root *decision, lineage []Segment) *decision {
	if root == nil || len(lineage) == 0 {
		return nil
	}

	node := root
	for _, segment := range lineage {
		ith := utils.FindIndex(node.explored, segment.Move)
		if ith < 0 { // Node has not expanded this move
			return nil
		}
		child := node.children[ith]
		if child.hash != segment.StateHash {
			log.Warn().Msgf("node's state hash %d does not match segment's state hash %d", child.hash, segment.StateHash)
			return nil
		}
		node = child
	}
	return node
}
