package game

import (
	"fmt"
	"strings"
)

// BlockadeRule selects how far an opposing blockade obstructs movement.
type BlockadeRule int

const (
	// BlockPassage forbids landing on and moving through a blockade.
	BlockPassage BlockadeRule = iota
	// BlockLanding only forbids landing on a blockade.
	BlockLanding
)

func (r BlockadeRule) String() string {
	if r == BlockLanding {
		return "landing"
	}
	return "passage"
}

func (r BlockadeRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *BlockadeRule) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "passage":
		*r = BlockPassage
	case "landing":
		*r = BlockLanding
	default:
		return fmt.Errorf("unknown blockade rule %q", text)
	}
	return nil
}

// Rules collects the rule variants the engine supports. The zero value is
// the standard game.
type Rules struct {
	Blockade BlockadeRule
	// SafeBlockades makes stacks on safe squares obstruct opponents too.
	SafeBlockades bool
	// MaxConsecutiveSixes forfeits the turn on the n-th six in a row. Zero
	// disables the rule.
	MaxConsecutiveSixes int
	// ExtraTurnOnArrival grants another roll when a piece arrives home.
	ExtraTurnOnArrival bool
}

func NewStandardRules() Rules {
	return Rules{Blockade: BlockPassage}
}

// Blockaded reports whether two or more pieces of a single color other than
// c stand on p and obstruct c.
func (r Rules) Blockaded(b Board, p Position, c Color) bool {
	if !p.OnTrack() {
		return false
	}
	if p.IsSafe() && !r.SafeBlockades {
		return false
	}
	for _, other := range AllColors {
		if other != c && b.Count(other, p) >= 2 {
			return true
		}
	}
	return false
}
