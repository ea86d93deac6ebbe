package game

// HasFinished reports whether every piece of color c is Home.
func HasFinished(b Board, c Color) bool {
	if !b.Active(c) {
		return false
	}
	return b.CountKind(c, KindHome) == PiecesPerColor
}

// Finished returns the active colors that have brought all pieces home, in
// canonical order.
func Finished(b Board) []Color {
	var colors []Color
	for _, c := range b.Colors() {
		if HasFinished(b, c) {
			colors = append(colors, c)
		}
	}
	return colors
}
