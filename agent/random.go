package agent

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(turn Turn) (int, error) {
	if len(turn.Legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return turn.Legal[r.rng.Intn(len(turn.Legal))], nil
}
