package game

// LegalMoves returns the ids of the pieces of color c that may move for
// roll under the standard rules.
func LegalMoves(b Board, c Color, roll int) []int {
	return NewStandardRules().LegalMoves(b, c, roll)
}

// LegalMoves returns, in ascending order, the ids of the pieces of color c
// that may move for roll. A piece in the base needs an exit roll, fewer
// than two of its own pieces on its start square and no opposing blockade
// there; a piece in play needs a
// destination that does not overshoot and a path free of opposing
// blockades. An empty result means the roll is forfeited.
func (r Rules) LegalMoves(b Board, c Color, roll int) []int {
	if !b.Active(c) || !ValidRoll(roll) {
		return nil
	}
	var ids []int
	for id, pos := range b.positions[c] {
		switch {
		case pos.IsHome():
			continue
		case pos.IsBase():
			if roll == ExitRoll && b.Count(c, c.Start()) < 2 && !r.Blockaded(b, c.Start(), c) {
				ids = append(ids, id)
			}
		default:
			if r.clear(b, pos, roll, c) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (r Rules) clear(b Board, from Position, roll int, c Color) bool {
	path, ok := Path(from, roll, c)
	if !ok {
		return false
	}
	if r.Blockade == BlockLanding {
		path = path[len(path)-1:]
	}
	for _, p := range path {
		if r.Blockaded(b, p, c) {
			return false
		}
	}
	return true
}
