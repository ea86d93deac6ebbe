package game

const (
	TrackLength    = 52 // squares on the shared circular track
	LaneLength     = 6  // private lane squares, the last one is the arrival square
	PiecesPerColor = 4
	ExitRoll       = 6 // roll needed to leave the base
	DieFaces       = 6

	// MaxDistance is the number of hops a piece in the base still needs:
	// one to exit, 51 along the track and six up the lane.
	MaxDistance = TrackLength + LaneLength

	// SlotCount is the number of addressable squares shared with the
	// presentation layer: the track followed by each color's lane.
	SlotCount = TrackLength + NumColors*LaneLength
)

var startSquares = [NumColors]int{0, 13, 26, 39}

// Each entrance is the square just behind the color's own start.
var homeEntrances = [NumColors]int{51, 12, 25, 38}

var safeSquares = map[int]struct{}{
	0: {}, 8: {}, 13: {}, 21: {}, 26: {}, 34: {}, 39: {}, 47: {},
}

// StartSquare is the track square a piece lands on when it leaves the base.
func (c Color) StartSquare() int {
	return startSquares[c]
}

// HomeEntrance is the last shared square before the color's lane.
func (c Color) HomeEntrance() int {
	return homeEntrances[c]
}

// Start returns the position a piece of color c takes on exit.
func (c Color) Start() Position {
	return Track(c.StartSquare())
}

// IsSafe reports whether square is a safe zone.
func IsSafe(square int) bool {
	_, ok := safeSquares[square]
	return ok
}

// SafeSquares returns the safe zones in ascending order.
func SafeSquares() []int {
	squares := make([]int, 0, len(safeSquares))
	for sq := 0; sq < TrackLength; sq++ {
		if IsSafe(sq) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// StartOwner returns the color whose start square is square, if any.
func StartOwner(square int) (Color, bool) {
	for i, sq := range startSquares {
		if sq == square {
			return Color(i), true
		}
	}
	return 0, false
}

// Slot maps a position of color c to the index shared with the
// presentation layer: 0-51 for the track, then six slots per color in
// canonical color order, the sixth being the arrival square. Pieces in the
// base have no slot.
func Slot(p Position, c Color) (int, bool) {
	laneBase := TrackLength + int(c)*LaneLength
	switch p.Kind() {
	case KindTrack:
		return p.Square(), true
	case KindLane:
		return laneBase + p.Offset(), true
	case KindHome:
		return laneBase + LaneLength - 1, true
	default:
		return 0, false
	}
}
