package searcher

import "math"

// Hyperparameters for the search

const CSquared = 2.0 // Exploration constant

const WIN = 1.0   // Reward for finishing first
const LOSS = -WIN // Reward for finishing last

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// placeReward maps a 1-based finishing place among n colors onto
// [LOSS, WIN].
func placeReward(place, n int) float64 {
	if n < 2 || place < 1 {
		return WIN
	}
	return WIN - (WIN-LOSS)*float64(place-1)/float64(n-1)
}
