package engine

import (
	"fmt"

	"tictac/game"
	"tictac/searcher"

	"github.com/rs/zerolog/log"
)

// Agent decides a move given the current state and the real moves played
// since its previous decision.
type Agent interface {
	FindMove(state game.State, lineage []searcher.Segment) (game.Move, error)
}

// MCTSAdapter exposes a searcher.MCTS as an Agent.
type MCTSAdapter struct {
	Searcher *searcher.MCTS
}

func (a MCTSAdapter) FindMove(state game.State, lineage []searcher.Segment) (game.Move, error) {
	return a.Searcher.FindNextMove(state, lineage)
}

// Engine plays one local game between two agents.
type Engine struct {
	State  game.Position
	Agents map[string]Agent
	Render bool
}

func LocalEngine(agentX Agent, agentO Agent) *Engine {
	return &Engine{
		State: game.NewPosition(),
		Agents: map[string]Agent{
			game.PlayerX: agentX,
			game.PlayerO: agentO,
		},
	}
}

// Run executes the game loop until the game is over. It returns the winner
// ("" for a draw) and the number of moves played. Each agent's backlog of
// moves since its own last decision feeds its searcher's tree reuse.
func (e *Engine) Run() (string, int, error) {
	backlog := map[string][]searcher.Segment{
		game.PlayerX: nil,
		game.PlayerO: nil,
	}

	moves := 0
	for !e.State.IsTerminal() {
		player := e.State.Player()
		move, err := e.Agents[player].FindMove(e.State, backlog[player])
		if err != nil {
			return "", moves, fmt.Errorf("agent %s failed to move: %w", player, err)
		}

		e.State = e.State.Play(move).(game.Position)
		moves++
		log.Debug().Str("player", player).Stringer("move", move).Msg("move played")
		if e.Render {
			fmt.Println(RenderBoard(e.State))
			fmt.Println()
		}

		segment := searcher.Segment{Move: move, StateHash: e.State.Hash()}
		backlog[player] = nil
		for p := range backlog {
			backlog[p] = append(backlog[p], segment)
		}
	}

	winner := e.State.Winner()
	if winner == "" {
		log.Info().Int("moves", moves).Msg("game drawn")
	} else {
		log.Info().Str("winner", winner).Int("moves", moves).Msg("game over")
	}
	return winner, moves, nil
}
