package main

import (
	"errors"
	"os"

	"tictac/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	runVersusExperiment(cfg)
}

type config struct {
	games       int
	iterations  int
	exploration float64
	seed        uint64
	outputDir   string
	verbose     bool
}

// loadConfig reads selfplay.yml from the working directory when present,
// falling back to defaults otherwise.
func loadConfig() (config, error) {
	viper.SetDefault("games", 50)
	viper.SetDefault("iterations", 300)
	viper.SetDefault("exploration", 0.0) // 0 keeps the engine default
	viper.SetDefault("seed", 1)
	viper.SetDefault("output_dir", "results")
	viper.SetDefault("verbose", false)

	viper.SetConfigName("selfplay")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, err
		}
	}

	return config{
		games:       viper.GetInt("games"),
		iterations:  viper.GetInt("iterations"),
		exploration: viper.GetFloat64("exploration"),
		seed:        viper.GetUint64("seed"),
		outputDir:   viper.GetString("output_dir"),
		verbose:     viper.GetBool("verbose"),
	}, nil
}

// runVersusExperiment pits the heuristic rollout agent against the random
// rollout agent under the same search budget and records the results.
func runVersusExperiment(cfg config) {
	heuristic := experiments.AgentConfig{
		Name:        "heuristic",
		Rollout:     "heuristic",
		Iterations:  cfg.iterations,
		Exploration: cfg.exploration,
		Seed:        cfg.seed,
	}
	random := experiments.AgentConfig{
		Name:        "random",
		Rollout:     "random",
		Iterations:  cfg.iterations,
		Exploration: cfg.exploration,
		Seed:        cfg.seed + 1,
	}

	records, err := experiments.RunVersus(heuristic, random, cfg.games)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	writer, err := experiments.NewWriter(cfg.outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err := writer.WriteAgentConfigs([]experiments.AgentConfig{heuristic, random}); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}
	if err := writer.WriteGameRecords(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}

	summary := experiments.Summarize(records, heuristic.Name)
	log.Info().
		Str("agent", summary.Agent).
		Int("wins", summary.Wins).
		Int("draws", summary.Draws).
		Int("losses", summary.Losses).
		Str("results", writer.Dir()).
		Msg("experiment complete")
}
