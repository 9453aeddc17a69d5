package searcher

import (
	"testing"

	"tictac/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, board string) game.Position {
	t.Helper()
	p, err := game.ParsePosition(board)
	require.NoError(t, err)
	return p
}

func TestRandomRolloutSimulate(t *testing.T) {
	t.Run("plays to a terminal state", func(t *testing.T) {
		rng := newTestRand()
		for i := 0; i < 50; i++ {
			winner := RandomRollout{}.Simulate(game.NewPosition(), rng)
			require.Contains(t, []string{"", game.PlayerX, game.PlayerO}, winner,
				"Rollout should report a winner or a draw")
		}
	})

	t.Run("returns the winner of an already finished game", func(t *testing.T) {
		state := mustParse(t, "XXXOO....")

		winner := RandomRollout{}.Simulate(state, newTestRand())

		require.Equal(t, game.PlayerX, winner)
	})
}

func TestHeuristicRolloutWinningPriority(t *testing.T) {
	// X completes the top row at c1; nothing is probabilistic about it
	state := mustParse(t, "XX.OO....")
	require.Equal(t, game.PlayerX, state.Player())

	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		move := HeuristicRollout{}.pick(state, rng)
		require.Equal(t, game.CellMove(2), move,
			"Winning move must be chosen with probability 1")
	}
}

func TestHeuristicRolloutBlockingPriority(t *testing.T) {
	// O has no win but must deny X the top row
	state := mustParse(t, "XX.O.....")
	require.Equal(t, game.PlayerO, state.Player())

	for seed := uint64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		move := HeuristicRollout{}.pick(state, rng)
		require.Equal(t, game.CellMove(2), move,
			"Blocking move must be chosen with probability 1")
	}
}

func TestHeuristicRolloutWinBeatsBlock(t *testing.T) {
	// Both sides threaten a line; the player to move should win, not block
	state := mustParse(t, "XX.OO....")

	move := HeuristicRollout{}.pick(state, newTestRand())

	require.Equal(t, game.CellMove(2), move,
		"Completing the own line outranks blocking the opponent's")
}

func TestHeuristicRolloutFallbackUniform(t *testing.T) {
	// Empty board: no wins, no threats, so the choice is uniform
	state := game.NewPosition()
	rng := newTestRand()

	const trials = 9000
	counts := map[game.Move]int{}
	for i := 0; i < trials; i++ {
		counts[HeuristicRollout{}.pick(state, rng)]++
	}

	require.Len(t, counts, game.Cells, "Every cell should be picked eventually")
	for move, count := range counts {
		require.InDelta(t, trials/game.Cells, count, 200,
			"Fallback choice should be close to uniform, move %v got %d", move, count)
	}
}

func TestHeuristicRolloutSimulate(t *testing.T) {
	t.Run("wins on the spot from a won position", func(t *testing.T) {
		state := mustParse(t, "XX.OO....")

		for seed := uint64(0); seed < 20; seed++ {
			winner := HeuristicRollout{}.Simulate(state, rand.New(rand.NewSource(seed)))
			require.Equal(t, game.PlayerX, winner,
				"The winning move fires before any random choice")
		}
	})

	t.Run("plays full games to termination", func(t *testing.T) {
		rng := newTestRand()
		for i := 0; i < 50; i++ {
			winner := HeuristicRollout{}.Simulate(game.NewPosition(), rng)
			require.Contains(t, []string{"", game.PlayerX, game.PlayerO}, winner)
		}
	})
}
