package searcher

import (
	"sync"

	"ludo/agent"
	"ludo/experiments/metrics"
)

// evaluationAgent plays the most visited move of a search.
type evaluationAgent struct {
	mc *MonteCarlo

	mu   sync.Mutex
	last metrics.SearchMetric
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mc *MonteCarlo) agent.Agent {
	return &evaluationAgent{mc: mc}
}

func (a *evaluationAgent) FindMove(turn agent.Turn) (int, error) {
	if len(turn.Legal) == 1 {
		a.record(metrics.SearchMetric{Candidates: 1})
		return turn.Legal[0], nil
	}
	arms, err := a.mc.search(turn)
	if err != nil {
		return 0, err
	}
	a.record(a.mc.metrics.Complete())
	return arms.best(), nil
}

func (a *evaluationAgent) LastMetric() metrics.SearchMetric {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}

func (a *evaluationAgent) record(metric metrics.SearchMetric) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.last = metric
}
