package agent

import (
	"errors"

	"ludo/game"
)

var ErrNoLegalMoves = errors.New("no legal moves to choose from")

// Turn is everything an agent sees when asked to pick a piece: the board,
// the acting color, the roll and the ids LegalMoves allowed for it.
type Turn struct {
	Board game.Board
	Color game.Color
	Roll  int
	Legal []int
}

type Agent interface {
	// FindMove returns the id of the piece to move, one of turn.Legal
	FindMove(turn Turn) (int, error)
}
