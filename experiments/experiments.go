package experiments

import (
	"fmt"
	"time"

	"tictac/engine"
	"tictac/game"
	"tictac/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AgentConfig describes one competitor in a versus experiment.
type AgentConfig struct {
	Name        string
	Rollout     string // "random" or "heuristic"
	Iterations  int
	Duration    time.Duration
	Exploration float64
	Seed        uint64
}

// GameRecord is the result of one game.
type GameRecord struct {
	Run      string
	Game     int
	AgentX   string
	AgentO   string
	Winner   string // player mark, "" for a draw
	Moves    int
	Duration time.Duration
}

// Summary tallies a versus experiment from one agent's point of view.
type Summary struct {
	Agent  string
	Wins   int
	Draws  int
	Losses int
}

// RunVersus plays the given number of games between two agent configs,
// swapping marks every game so first-move advantage cancels out. Each game
// gets fresh searchers seeded from the config seed and the game index, so a
// whole experiment is reproducible.
func RunVersus(first AgentConfig, second AgentConfig, games int) ([]GameRecord, error) {
	run := uuid.NewString()
	log.Info().
		Str("run", run).
		Str("first", first.Name).
		Str("second", second.Name).
		Int("games", games).
		Msg("starting versus experiment")

	records := make([]GameRecord, 0, games)
	for i := 0; i < games; i++ {
		x, o := first, second
		if i%2 == 1 {
			x, o = o, x
		}

		agentX, err := newAgent(x, x.Seed+uint64(i))
		if err != nil {
			return nil, err
		}
		agentO, err := newAgent(o, o.Seed+uint64(i))
		if err != nil {
			return nil, err
		}

		start := time.Now()
		winner, moves, err := engine.LocalEngine(agentX, agentO).Run()
		if err != nil {
			return nil, fmt.Errorf("game %d failed: %w", i, err)
		}

		records = append(records, GameRecord{
			Run:      run,
			Game:     i,
			AgentX:   x.Name,
			AgentO:   o.Name,
			Winner:   winner,
			Moves:    moves,
			Duration: time.Since(start),
		})
	}
	return records, nil
}

// Summarize tallies records from the named agent's point of view.
func Summarize(records []GameRecord, agent string) Summary {
	s := Summary{Agent: agent}
	for _, r := range records {
		switch {
		case r.Winner == "":
			s.Draws++
		case r.Winner == game.PlayerX && r.AgentX == agent,
			r.Winner == game.PlayerO && r.AgentO == agent:
			s.Wins++
		default:
			s.Losses++
		}
	}
	return s
}

func newAgent(cfg AgentConfig, seed uint64) (engine.Agent, error) {
	options := []searcher.Option{searcher.WithSeed(seed)}
	if cfg.Iterations > 0 {
		options = append(options, searcher.WithIterations(cfg.Iterations))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	if cfg.Exploration > 0 {
		options = append(options, searcher.WithExploration(cfg.Exploration))
	}

	switch cfg.Rollout {
	case "random":
		options = append(options, searcher.WithRollout(searcher.RandomRollout{}))
	case "heuristic", "":
		options = append(options, searcher.WithRollout(searcher.HeuristicRollout{}))
	default:
		return nil, fmt.Errorf("unknown rollout policy %q", cfg.Rollout)
	}

	m, err := searcher.NewMCTS(options...)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", cfg.Name, err)
	}
	return engine.MCTSAdapter{Searcher: m}, nil
}
