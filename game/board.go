package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Piece is one of a color's four tokens.
type Piece struct {
	Color    Color
	ID       int
	Position Position
}

func (p Piece) String() string {
	return fmt.Sprintf("%s#%d@%s", p.Color, p.ID, p.Position)
}

// Board holds the position of every piece of the participating colors.
// It is a value: operations that change it return a new Board and leave the
// receiver untouched, so a Board can be shared freely as a snapshot.
type Board struct {
	active    [NumColors]bool
	positions [NumColors][PiecesPerColor]Position
}

// NewBoard returns a board with all pieces of the given colors in base.
func NewBoard(colors ...Color) Board {
	var b Board
	for _, c := range colors {
		if c.Valid() {
			b.active[c] = true
		}
	}
	return b
}

// Active reports whether color c takes part in the game.
func (b Board) Active(c Color) bool {
	return c.Valid() && b.active[c]
}

// Colors returns the participating colors in canonical order.
func (b Board) Colors() []Color {
	var colors []Color
	for _, c := range AllColors {
		if b.active[c] {
			colors = append(colors, c)
		}
	}
	return colors
}

// Position returns where piece id of color c stands.
func (b Board) Position(c Color, id int) Position {
	return b.positions[c][id]
}

// Piece returns piece id of color c.
func (b Board) Piece(c Color, id int) (Piece, error) {
	if !b.Active(c) {
		return Piece{}, fmt.Errorf("%w: %s", ErrInactiveColor, c)
	}
	if id < 0 || id >= PiecesPerColor {
		return Piece{}, fmt.Errorf("%w: %s#%d", ErrUnknownPiece, c, id)
	}
	return Piece{Color: c, ID: id, Position: b.positions[c][id]}, nil
}

// Pieces returns the pieces of color c ordered by id, or nil if c is not
// in the game.
func (b Board) Pieces(c Color) []Piece {
	if !b.Active(c) {
		return nil
	}
	pieces := make([]Piece, PiecesPerColor)
	for id, pos := range b.positions[c] {
		pieces[id] = Piece{Color: c, ID: id, Position: pos}
	}
	return pieces
}

// With returns a copy of the board with piece id of color c moved to p.
func (b Board) With(c Color, id int, p Position) Board {
	b.positions[c][id] = p
	return b
}

// Count returns how many pieces of color c stand on p.
func (b Board) Count(c Color, p Position) int {
	if !b.Active(c) {
		return 0
	}
	n := 0
	for _, pos := range b.positions[c] {
		if pos == p {
			n++
		}
	}
	return n
}

// CountKind returns how many pieces of color c are in positions of kind k.
func (b Board) CountKind(c Color, k Kind) int {
	if !b.Active(c) {
		return 0
	}
	n := 0
	for _, pos := range b.positions[c] {
		if pos.Kind() == k {
			n++
		}
	}
	return n
}

// Occupants returns the pieces of colors other than c standing on track
// square sq, grouped by color in canonical order.
func (b Board) Occupants(sq int, c Color) []Piece {
	var pieces []Piece
	target := Track(sq)
	for _, other := range AllColors {
		if other == c || !b.active[other] {
			continue
		}
		for id, pos := range b.positions[other] {
			if pos == target {
				pieces = append(pieces, Piece{Color: other, ID: id, Position: pos})
			}
		}
	}
	return pieces
}

// Hash returns an FNV-64a digest of the active colors and positions.
func (b Board) Hash() uint64 {
	hasher := fnv.New64a()
	for _, c := range AllColors {
		if !b.active[c] {
			continue
		}
		binary.Write(hasher, binary.LittleEndian, int64(c))
		for _, pos := range b.positions[c] {
			binary.Write(hasher, binary.LittleEndian, int64(pos.kind))
			binary.Write(hasher, binary.LittleEndian, int64(pos.index))
		}
	}
	return hasher.Sum64()
}

func (b Board) String() string {
	var sb strings.Builder
	for i, c := range b.Colors() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(c.String())
		sb.WriteString("[")
		for id, pos := range b.positions[c] {
			if id > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(pos.String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}
