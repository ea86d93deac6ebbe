package game

// ThreatRange is the farthest an opposing piece can strike in one roll.
const ThreatRange = DieFaces

// Threatened reports whether a piece of color c standing on track square sq
// could be captured next roll: some opposing piece on the track is 1 to 6
// squares behind it and would not turn into its own lane first. Safe
// squares are never threatened.
func Threatened(b Board, sq int, c Color) bool {
	if IsSafe(sq) {
		return false
	}
	for _, other := range b.Colors() {
		if other == c {
			continue
		}
		for _, pos := range b.positions[other] {
			if pos.OnTrack() && reaches(pos.Square(), sq, other) {
				return true
			}
		}
	}
	return false
}

// reaches reports whether a piece of color c on square from can land on
// square to within ThreatRange hops without entering its lane.
func reaches(from, to int, c Color) bool {
	distance := (to - from + TrackLength) % TrackLength
	if distance == 0 || distance > ThreatRange {
		return false
	}
	sq := from
	for i := 0; i < distance; i++ {
		if sq == c.HomeEntrance() {
			return false
		}
		sq = (sq + 1) % TrackLength
	}
	return true
}
