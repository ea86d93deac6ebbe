package game

// Evaluate scores a board between -1 and 1 indicating how favorable it is
// for color c (positive means ahead).
type Evaluate func(b Board, c Color) float64

// EvaluateProgress compares the hops made by c's pieces with those of the
// strongest opponent.
func EvaluateProgress(b Board, c Color) float64 {
	own, rival := b.tally(c, func(p Position, owner Color) float64 {
		return float64(Progress(p, owner))
	})
	return normalize(own, rival)
}

// EvaluateExposure adds to EvaluateProgress how much of each side's progress
// sits on squares an opponent can hit next roll.
func EvaluateExposure(b Board, c Color) float64 {
	progressScore := EvaluateProgress(b, c)
	own, rival := b.tally(c, func(p Position, owner Color) float64 {
		if p.OnTrack() && Threatened(b, p.Square(), owner) {
			return 0
		}
		return float64(Progress(p, owner))
	})
	return (progressScore + normalize(own, rival)) / 2
}

// tally sums value over the pieces of c and over the pieces of the
// opponent with the highest sum.
func (b Board) tally(c Color, value func(Position, Color) float64) (own, rival float64) {
	for _, other := range b.Colors() {
		sum := 0.0
		for _, pos := range b.positions[other] {
			sum += value(pos, other)
		}
		if other == c {
			own = sum
		} else if sum > rival {
			rival = sum
		}
	}
	return own, rival
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
