package experiments

import (
	"fmt"
	"time"

	"ludo/experiments/metrics"
	"ludo/meta"
)

// TimeBudget is the search time per move of the preset Monte Carlo agents.
const TimeBudget = 10 * time.Millisecond

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: KindMonteCarlo, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Kind: KindMonteCarlo, Goroutines: 2, Duration: TimeBudget},
	{ID: 3, Kind: KindMonteCarlo, Goroutines: 4, Duration: TimeBudget},
	{ID: 4, Kind: KindMonteCarlo, Goroutines: 8, Duration: TimeBudget},
	{ID: 5, Kind: KindMonteCarlo, Goroutines: 16, Duration: TimeBudget},
}

// ThroughputConfig pairs each parallel agent with itself, for the same
// playing strength and similar game length, to measure episodes per move.
func ThroughputConfig() Config {
	config := preset("throughput")
	config.Agents = parallelConfigs
	for _, a := range parallelConfigs {
		config.Matchups = append(config.Matchups, []int{a.ID, a.ID})
	}
	return config
}

// ParallelizationConfig pairs each parallel agent against the sequential
// baseline.
func ParallelizationConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindMonteCarlo, Goroutines: 1, Duration: TimeBudget}
	config := preset("parallelization")
	config.Agents = append([]metrics.AgentConfig{baseline}, parallelConfigs[1:]...)
	for _, a := range parallelConfigs[1:] {
		config.Matchups = append(config.Matchups, []int{baseline.ID, a.ID})
	}
	return config
}

// CutoffConfig pairs rollouts cut off at various depths against full
// playouts.
func CutoffConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Kind: KindMonteCarlo, Goroutines: meta.GO_ROUTINES, Duration: TimeBudget}
	config := preset("cutoff")
	config.Agents = []metrics.AgentConfig{baseline}
	for i, cutoff := range []int{10, meta.WITH_CUTOFF, 150} {
		a := baseline
		a.ID = i + 1
		a.Cutoff = cutoff
		config.Agents = append(config.Agents, a)
		config.Matchups = append(config.Matchups, []int{baseline.ID, a.ID})
	}
	return config
}

// HeuristicConfig measures the search against the rule-based agent in a
// four player game.
func HeuristicConfig() Config {
	config := preset("search_vs_heuristic")
	config.Agents = []metrics.AgentConfig{
		{ID: 1, Kind: KindMonteCarlo, Goroutines: meta.GO_ROUTINES, Episodes: meta.EPISODES, Cutoff: meta.WITH_CUTOFF},
		{ID: 2, Kind: KindHeuristic},
		{ID: 3, Kind: KindRandom},
	}
	config.Matchups = [][]int{{1, 2}, {1, 2, 3, 2}}
	return config
}

// Preset returns a built-in experiment by name.
func Preset(name string) (Config, error) {
	switch name {
	case "", DefaultConfig().Name:
		return DefaultConfig(), nil
	case "throughput":
		return ThroughputConfig(), nil
	case "parallelization":
		return ParallelizationConfig(), nil
	case "cutoff":
		return CutoffConfig(), nil
	case "search_vs_heuristic":
		return HeuristicConfig(), nil
	default:
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
}

func preset(name string) Config {
	config := DefaultConfig()
	config.Name = name
	config.Agents = nil
	config.Matchups = nil
	return config
}
