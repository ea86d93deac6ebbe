package experiments

import (
	"fmt"

	"ludo/agent"
	"ludo/engine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"
	"ludo/searcher"
	"ludo/utils"

	"github.com/rs/zerolog/log"
)

// Result holds everything an experiment produced.
type Result struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.Summary
}

// seats lists the colors used for a given number of players, opposite
// corners first.
func seats(n int) []game.Color {
	switch n {
	case 2:
		return []game.Color{game.Red, game.Yellow}
	case 3:
		return []game.Color{game.Red, game.Green, game.Yellow}
	default:
		return game.AllColors
	}
}

// Run plays every matchup of the config. Game g of a matchup rotates the
// agents by g seats so that each agent starts equally often.
func Run(config Config) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{}
	count := 0

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		log.Info().Msgf("starting matchup %d of %d between agents %v...", mi+1, len(config.Matchups), matchup)

		colors := seats(len(matchup))
		for g := 0; g < config.Games; g++ {
			count++
			ids := utils.Rotate(matchup, g)
			record, moves, err := runGame(config, count, colors, ids)
			if err != nil {
				return result, fmt.Errorf("failed to play matchup %d game %d: %w", mi+1, g+1, err)
			}
			record.Matchup = mi + 1
			result.Games = append(result.Games, record)
			for _, mm := range moves {
				result.Moves = append(result.Moves, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			if record.Completed {
				log.Info().Msgf("completed matchup %d of %d game %d with winner: agent %d", mi+1, len(config.Matchups), g+1, record.WinnerAgent())
			} else {
				log.Info().Msgf("abandoned matchup %d of %d game %d after %d rolls", mi+1, len(config.Matchups), g+1, record.TotalRolls)
			}
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	result.Summaries = Summarize(result.Games)
	log.Info().Msgf("completed %s experiment", config.Name)
	return result, nil
}

// Store writes the config and the results below config.Output.
func Store(config Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteSummaries(result.Summaries); err != nil {
		return "", fmt.Errorf("failed to write summaries: %w", err)
	}
	log.Info().Msg("stored summaries")

	if config.Parquet {
		if err := writer.WriteGameParquet(result.Games); err != nil {
			return "", fmt.Errorf("failed to write game parquet: %w", err)
		}
		if err := writer.WriteMoveParquet(result.Moves); err != nil {
			return "", fmt.Errorf("failed to write move parquet: %w", err)
		}
		log.Info().Msg("stored parquet records")
	}
	return writer.Dir(), nil
}

// runGame executes a single game with ids[i] playing colors[i].
func runGame(config Config, id int, colors []game.Color, ids []int) (metrics.GameRecord, []metrics.MoveMetric, error) {
	rules := config.Rules.Rules()
	players := make([]engine.Player, len(colors))
	agents := make(map[game.Color]agent.Agent, len(colors))
	for i, c := range colors {
		players[i] = engine.Player{Color: c, Name: fmt.Sprintf("Agent %d", ids[i]), Type: engine.Computer}
		seed := config.Seed + uint64(id)*uint64(game.NumColors) + uint64(i)
		agents[c] = createAgent(config.agent(ids[i]), rules, seed)
	}

	m, err := engine.NewMatch(
		engine.Config{Players: players, Rules: rules},
		agents,
		engine.NewDice(config.Seed+uint64(id)),
		engine.WithMaxRolls(config.MaxRolls),
	)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	_, gameMetric, moveMetrics, err := m.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	return metrics.GameRecord{
		ID:         id,
		Seats:      ids,
		Colors:     colors,
		GameMetric: gameMetric,
	}, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, rules game.Rules, seed uint64) agent.Agent {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandom(seed)
	case KindMonteCarlo:
		return searcher.NewEvaluationAgent(createMonteCarlo(config, rules, seed))
	case KindTraining:
		return searcher.NewTrainingAgent(createMonteCarlo(config, rules, seed), config.Temperature, seed)
	default:
		return agent.NewHeuristic()
	}
}

func createMonteCarlo(config metrics.AgentConfig, rules game.Rules, seed uint64) *searcher.MonteCarlo {
	options := []searcher.Option{searcher.WithRules(rules), searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	switch config.Evaluate {
	case "exposure":
		options = append(options, searcher.WithEvaluationFn(game.EvaluateExposure))
	case "progress":
		options = append(options, searcher.WithEvaluationFn(game.EvaluateProgress))
	}

	goroutines := config.Goroutines
	if goroutines <= 0 {
		goroutines = meta.GO_ROUTINES
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMonteCarlo(goroutines, options...)
}
