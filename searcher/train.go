package searcher

import (
	"math"
	"sync"

	"ludo/agent"
	"ludo/experiments/metrics"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// trainingAgent samples its move from the visit counts of a search, which
// keeps self-play games varied.
type trainingAgent struct {
	mc          *MonteCarlo
	temperature float64

	mu   sync.Mutex
	rng  *rand.Rand
	last metrics.SearchMetric
}

// NewTrainingAgent returns a new agent for self-play during training. Lower
// temperatures play closer to the most visited move.
func NewTrainingAgent(mc *MonteCarlo, temperature float64, seed uint64) agent.Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &trainingAgent{
		mc:          mc,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *trainingAgent) FindMove(turn agent.Turn) (int, error) {
	policy, metric, err := a.mc.Simulate(turn)
	if err != nil {
		return 0, err
	}
	policy = adjustTemperature(policy, a.temperature)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = metric
	return sample(policy, a.rng.Float64()), nil
}

func (a *trainingAgent) LastMetric() metrics.SearchMetric {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

func adjustTemperature(policy map[int]float64, temperature float64) map[int]float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make(map[int]float64, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted[move] = prob
	}
	// Normalize
	for move := range adjusted {
		if sum > 0 {
			adjusted[move] /= sum
		} else {
			adjusted[move] = 1 / float64(len(adjusted))
		}
	}
	return adjusted
}

// sample walks the policy in id order so a given draw always picks the
// same move.
func sample(policy map[int]float64, sampled float64) int {
	moves := make([]int, 0, len(policy))
	for move := range policy {
		moves = append(moves, move)
	}
	slices.Sort(moves)

	cumulative := 0.0
	for _, move := range moves {
		cumulative += policy[move]
		if sampled < cumulative {
			return move
		}
	}
	return moves[len(moves)-1] // Fallback in case of rounding errors
}
