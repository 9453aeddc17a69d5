package searcher

import (
	"tictac/game"

	"golang.org/x/exp/rand"
)

// Rollout simulates a game to completion from state and reports the winner,
// "" for a draw. The driver treats implementations as drop-in replacements
// for each other.
type Rollout interface {
	Simulate(state game.State, rng *rand.Rand) (winner string)
}

// RandomRollout plays uniformly random legal moves to the end of the game.
type RandomRollout struct{}

func (RandomRollout) Simulate(state game.State, rng *rand.Rand) string {
	moves := state.LegalMoves()
	for len(moves) > 0 {
		state = state.Play(moves[rng.Intn(len(moves))])
		moves = state.LegalMoves()
	}
	return state.Winner()
}

// HeuristicRollout plays an immediately winning move when one exists, else a
// move that blocks the opponent's immediate win, else a uniformly random
// move. The scan reruns at every ply for both sides, since the rollout is
// self-play.
type HeuristicRollout struct{}

func (h HeuristicRollout) Simulate(state game.State, rng *rand.Rand) string {
	for !state.IsTerminal() {
		state = state.Play(h.pick(state, rng))
	}
	return state.Winner()
}

func (h HeuristicRollout) pick(state game.State, rng *rand.Rand) game.Move {
	moves := state.LegalMoves()
	if wins := winningMoves(state, moves); len(wins) > 0 {
		return wins[rng.Intn(len(wins))]
	}
	if blocks := blockingMoves(state, moves); len(blocks) > 0 {
		return blocks[rng.Intn(len(blocks))]
	}
	return moves[rng.Intn(len(moves))]
}

// winningMoves returns the moves that immediately end the game in a win for
// the player to move.
func winningMoves(state game.State, moves []game.Move) []game.Move {
	player := state.Player()
	var wins []game.Move
	for _, move := range moves {
		if next := state.Play(move); next.Winner() == player {
			wins = append(wins, move)
		}
	}
	return wins
}

// blockingMoves returns the moves that deny the opponent an immediate winning
// reply, but only when some other move would grant one. With no threat on the
// board, or an unavoidable double threat, it returns nil and the caller falls
// back to a random choice.
func blockingMoves(state game.State, moves []game.Move) []game.Move {
	var safe []game.Move
	threatened := false
	for _, move := range moves {
		next := state.Play(move)
		if len(winningMoves(next, next.LegalMoves())) == 0 {
			safe = append(safe, move)
		} else {
			threatened = true
		}
	}
	if !threatened {
		return nil
	}
	return safe
}
