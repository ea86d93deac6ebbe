package game

import "errors"

var (
	ErrUnknownColor  = errors.New("unknown color")
	ErrInactiveColor = errors.New("color is not in the game")
	ErrUnknownPiece  = errors.New("unknown piece")
	ErrInvalidRoll   = errors.New("roll must be between 1 and 6")
	ErrIllegalMove   = errors.New("illegal move")
)

// ValidRoll reports whether v is a face of the die.
func ValidRoll(v int) bool {
	return v >= 1 && v <= DieFaces
}
