package searcher

import (
	"math"
	"sync"
)

// arms keeps the statistics of each candidate move at the root. Every
// episode first applies a virtual loss to the arm it picks so that
// concurrent workers spread out, and reverses it on backup.
type arms struct {
	mu      sync.Mutex
	ids     []int
	visits  []int
	rewards []float64
	total   int
}

func newArms(ids []int) *arms {
	return &arms{
		ids:     ids,
		visits:  make([]int, len(ids)),
		rewards: make([]float64, len(ids)),
	}
}

// pick returns the index of the next arm to play: the first unvisited one,
// otherwise the one with the highest UCT score.
func (a *arms) pick() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	best := 0
	for i, n := range a.visits {
		if n == 0 {
			best = i
			break
		}
		if i == 0 {
			continue
		}
		u := newUCT(CSquared, float64(a.total))
		if u.evaluate(a.rewards[i], float64(n)) > u.evaluate(a.rewards[best], float64(a.visits[best])) {
			best = i
		}
	}
	a.applyLoss(best)
	return best
}

func (a *arms) applyLoss(i int) {
	a.visits[i]++
	a.total++
	a.rewards[i] += LOSS
}

func (a *arms) backup(i int, reward float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rewards[i] += reward - LOSS
}

// policy returns the visit count of every candidate id.
func (a *arms) policy() map[int]float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	policy := make(map[int]float64, len(a.ids))
	for i, id := range a.ids {
		policy[id] = float64(a.visits[i])
	}
	return policy
}

// best returns the most visited id, breaking ties by the mean reward and
// then by candidate order.
func (a *arms) best() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	best, bestMean := 0, math.Inf(-1)
	for i, n := range a.visits {
		mean := math.Inf(-1)
		if n > 0 {
			mean = a.rewards[i] / float64(n)
		}
		if n > a.visits[best] || (n == a.visits[best] && mean > bestMean) {
			best, bestMean = i, mean
		}
	}
	return a.ids[best]
}
