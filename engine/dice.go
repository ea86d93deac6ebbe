package engine

import (
	"sync"

	"ludo/game"

	"golang.org/x/exp/rand"
)

// Dice produces roll values for a match. The engine itself never rolls;
// callers submit values.
type Dice interface {
	Roll() int
}

type randomDice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDice returns a fair six-sided die seeded with seed.
func NewDice(seed uint64) Dice {
	return &randomDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *randomDice) Roll() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(game.DieFaces) + 1
}

// Sequence replays fixed values, starting over when exhausted.
type Sequence struct {
	values []int
	next   int
}

func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("sequence needs at least one value")
	}
	return &Sequence{values: values}
}

func (s *Sequence) Roll() int {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
