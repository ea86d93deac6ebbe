package experiments

import (
	"errors"
	"fmt"
	"os"

	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"

	"gopkg.in/yaml.v3"
)

const (
	KindHeuristic  = "heuristic"
	KindRandom     = "random"
	KindMonteCarlo = "montecarlo"
	KindTraining   = "training"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// RulesConfig mirrors game.Rules in YAML.
type RulesConfig struct {
	Blockade            game.BlockadeRule `yaml:"blockade"`
	SafeBlockades       bool              `yaml:"safe_blockades"`
	MaxConsecutiveSixes int               `yaml:"max_consecutive_sixes"`
	ExtraTurnOnArrival  bool              `yaml:"extra_turn_on_arrival"`
}

func (r RulesConfig) Rules() game.Rules {
	return game.Rules{
		Blockade:            r.Blockade,
		SafeBlockades:       r.SafeBlockades,
		MaxConsecutiveSixes: r.MaxConsecutiveSixes,
		ExtraTurnOnArrival:  r.ExtraTurnOnArrival,
	}
}

// Config describes an experiment: the competing agents and the matchups
// between them, each played Games times.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Seed     uint64                `yaml:"seed"`
	MaxRolls int                   `yaml:"max_rolls"`
	Output   string                `yaml:"output"`
	Parquet  bool                  `yaml:"parquet"`
	Rules    RulesConfig           `yaml:"rules"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"`
}

// DefaultConfig pits the heuristic agent against the random baseline.
func DefaultConfig() Config {
	return Config{
		Name:     "heuristic_vs_random",
		Games:    meta.NUM_GAMES,
		Seed:     meta.SEED,
		MaxRolls: meta.MAX_TURNS,
		Output:   "results",
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: KindHeuristic},
			{ID: 2, Kind: KindRandom},
		},
		Matchups: [][]int{{1, 2}},
	}
}

// LoadConfig reads a YAML experiment. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	config.Agents = nil
	config.Matchups = nil
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(config.Agents) == 0 && len(config.Matchups) == 0 {
		defaults := DefaultConfig()
		config.Agents = defaults.Agents
		config.Matchups = defaults.Matchups
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}
	if c.Rules.MaxConsecutiveSixes < 0 {
		return fmt.Errorf("%w: max_consecutive_sixes must not be negative", ErrInvalidConfig)
	}
	ids := make(map[int]bool, len(c.Agents))
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("%w: duplicate agent %d", ErrInvalidConfig, a.ID)
		}
		ids[a.ID] = true
		switch a.Kind {
		case KindHeuristic, KindRandom:
		case KindMonteCarlo, KindTraining:
			if a.Episodes <= 0 && a.Duration <= 0 {
				return fmt.Errorf("%w: agent %d needs episodes or a duration", ErrInvalidConfig, a.ID)
			}
		default:
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
		switch a.Evaluate {
		case "", "progress", "exposure":
		default:
			return fmt.Errorf("%w: agent %d has unknown evaluation %q", ErrInvalidConfig, a.ID, a.Evaluate)
		}
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for i, matchup := range c.Matchups {
		if len(matchup) < 2 || len(matchup) > len(game.AllColors) {
			return fmt.Errorf("%w: matchup %d needs 2 to %d agents", ErrInvalidConfig, i+1, len(game.AllColors))
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("%w: matchup %d references unknown agent %d", ErrInvalidConfig, i+1, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	return metrics.AgentConfig{}
}
