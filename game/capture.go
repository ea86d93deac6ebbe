package game

import "fmt"

// Result describes a resolved move.
type Result struct {
	Piece    Piece    // the mover at its destination
	From     Position // where the mover started
	Captured bool
	Victims  []Piece // captured pieces at the square they were taken on
	Arrived  bool    // the mover reached Home
}

// ApplyMove moves piece id of color c for roll and resolves captures: a lone
// opposing piece on a non-safe destination square goes back to its base.
// Pieces in lanes or Home are never captured, and own pieces sharing the
// square are unaffected. The input board is never modified.
//
// ApplyMove does not check blockades; callers pick id from LegalMoves.
func ApplyMove(b Board, c Color, id, roll int) (Board, Result, error) {
	piece, err := b.Piece(c, id)
	if err != nil {
		return b, Result{}, err
	}
	if !ValidRoll(roll) {
		return b, Result{}, fmt.Errorf("%w: %d", ErrInvalidRoll, roll)
	}
	dest, ok := Destination(piece.Position, roll, c)
	if !ok {
		return b, Result{}, fmt.Errorf("%w: %s cannot move %d", ErrIllegalMove, piece, roll)
	}

	next := b.With(c, id, dest)
	result := Result{
		Piece:   Piece{Color: c, ID: id, Position: dest},
		From:    piece.Position,
		Arrived: dest.IsHome(),
	}

	if dest.OnTrack() && !dest.IsSafe() {
		occupants := b.Occupants(dest.Square(), c)
		for i, victim := range occupants {
			alone := (i == 0 || occupants[i-1].Color != victim.Color) &&
				(i == len(occupants)-1 || occupants[i+1].Color != victim.Color)
			if alone {
				next = next.With(victim.Color, victim.ID, Base())
				result.Victims = append(result.Victims, victim)
			}
		}
	}
	result.Captured = len(result.Victims) > 0
	return next, result, nil
}
