package agent

import (
	"fmt"

	"ludo/game"
)

// Score is the evaluation of one candidate move, broken down by term.
type Score struct {
	ID    int
	Total int
	Terms map[string]int
}

// Heuristic picks moves with a fixed weighted sum of incentives and
// penalties. It holds no state between calls and is safe for concurrent use.
type Heuristic struct {
	weights Weights
}

type HeuristicOption func(h *Heuristic)

func WithWeights(weights Weights) HeuristicOption {
	return func(h *Heuristic) {
		h.weights = weights
	}
}

func NewHeuristic(options ...HeuristicOption) *Heuristic {
	h := &Heuristic{weights: DefaultWeights()}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *Heuristic) Weights() Weights {
	return h.weights
}

// FindMove returns the legal id with the highest score. Ties go to the id
// listed first in turn.Legal.
func (h *Heuristic) FindMove(turn Turn) (int, error) {
	if len(turn.Legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	var best Score
	for i, id := range turn.Legal {
		score, err := h.Score(turn, id)
		if err != nil {
			return 0, err
		}
		if i == 0 || score.Total > best.Total {
			best = score
		}
	}
	return best.ID, nil
}

// Score evaluates moving piece id for turn.Roll. It does not check id
// against turn.Legal, so a blockaded move can still be scored.
func (h *Heuristic) Score(turn Turn, id int) (Score, error) {
	after, result, err := game.ApplyMove(turn.Board, turn.Color, id, turn.Roll)
	if err != nil {
		return Score{}, fmt.Errorf("failed to score piece %d: %w", id, err)
	}
	m := candidate{
		color:  turn.Color,
		id:     id,
		before: turn.Board,
		after:  after,
		from:   result.From,
		to:     result.Piece.Position,
		result: result,
	}

	score := Score{ID: id, Terms: make(map[string]int, len(terms))}
	for _, t := range terms {
		v := t.value(h.weights, m)
		score.Terms[t.name] = v
		score.Total += v
	}
	return score, nil
}
