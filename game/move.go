package game

// hop moves a piece of color c one square forward. A piece standing on its
// home entrance turns into the lane; a hop from the last lane square before
// the arrival square lands Home. Hops from Base or Home are not possible.
func hop(p Position, c Color) (Position, bool) {
	switch p.kind {
	case KindTrack:
		if p.index == c.HomeEntrance() {
			return Lane(0), true
		}
		return Track((p.index + 1) % TrackLength), true
	case KindLane:
		if p.index+1 == LaneLength-1 {
			return Home(), true
		}
		return Lane(p.index + 1), true
	default:
		return p, false
	}
}

// Advance resolves steps single-square hops from p for a piece of color c.
// It reports false if the piece cannot move that far: it is in the base,
// already home, or would overshoot the arrival square.
func Advance(p Position, steps int, c Color) (Position, bool) {
	if steps < 1 || !p.InPlay() {
		return p, false
	}
	for i := 0; i < steps; i++ {
		next, ok := hop(p, c)
		if !ok {
			return p, false
		}
		p = next
	}
	return p, true
}

// Destination is where a piece at p ends up for roll: the start square when
// leaving the base on an exit roll, otherwise the result of Advance.
func Destination(p Position, roll int, c Color) (Position, bool) {
	if !ValidRoll(roll) {
		return p, false
	}
	if p.IsBase() {
		if roll != ExitRoll {
			return p, false
		}
		return c.Start(), true
	}
	return Advance(p, roll, c)
}

// Path lists every square a piece at p visits for steps hops, ending at its
// destination. A piece leaving the base only visits its start square.
func Path(p Position, steps int, c Color) ([]Position, bool) {
	if p.IsBase() {
		return []Position{c.Start()}, true
	}
	if steps < 1 || !p.InPlay() {
		return nil, false
	}
	path := make([]Position, 0, steps)
	for i := 0; i < steps; i++ {
		next, ok := hop(p, c)
		if !ok {
			return nil, false
		}
		path = append(path, next)
		p = next
	}
	return path, true
}

// DistanceToHome counts the hops a piece of color c at p still needs to
// arrive, MaxDistance for a piece in the base.
func DistanceToHome(p Position, c Color) int {
	switch p.kind {
	case KindBase:
		return MaxDistance
	case KindHome:
		return 0
	case KindLane:
		return LaneLength - 1 - p.index
	default:
		travelled := (p.index - c.StartSquare() + TrackLength) % TrackLength
		return TrackLength - 1 - travelled + LaneLength
	}
}

// Progress is the number of hops a piece has already made from the base.
func Progress(p Position, c Color) int {
	return MaxDistance - DistanceToHome(p, c)
}
