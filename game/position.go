package game

import "fmt"

// Kind tags the variant held by a Position.
type Kind uint8

const (
	KindBase  Kind = iota // not yet in play
	KindTrack             // on the shared track
	KindLane              // in the color's private lane
	KindHome              // arrived, terminal
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindTrack:
		return "track"
	case KindLane:
		return "lane"
	case KindHome:
		return "home"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Position is where a piece stands. Track squares are shared by all colors;
// lane offsets are relative to the owning color's lane and never collide
// with another color's lane. The zero value is Base.
type Position struct {
	kind  Kind
	index int
}

func Base() Position {
	return Position{kind: KindBase}
}

func Home() Position {
	return Position{kind: KindHome}
}

// Track returns the position on track square n, 0 <= n < TrackLength.
func Track(n int) Position {
	if n < 0 || n >= TrackLength {
		panic(fmt.Sprintf("track square %d out of range", n))
	}
	return Position{kind: KindTrack, index: n}
}

// Lane returns lane offset k, 0 <= k < LaneLength-1. The final lane square
// is represented by Home.
func Lane(k int) Position {
	if k < 0 || k >= LaneLength-1 {
		panic(fmt.Sprintf("lane offset %d out of range", k))
	}
	return Position{kind: KindLane, index: k}
}

func (p Position) Kind() Kind { return p.kind }

func (p Position) IsBase() bool  { return p.kind == KindBase }
func (p Position) OnTrack() bool { return p.kind == KindTrack }
func (p Position) InLane() bool  { return p.kind == KindLane }
func (p Position) IsHome() bool  { return p.kind == KindHome }

// InPlay reports whether the piece is on the track or in its lane.
func (p Position) InPlay() bool {
	return p.kind == KindTrack || p.kind == KindLane
}

// Square returns the track square, or -1 if p is not on the track.
func (p Position) Square() int {
	if p.kind != KindTrack {
		return -1
	}
	return p.index
}

// Offset returns the lane offset, or -1 if p is not in a lane.
func (p Position) Offset() int {
	if p.kind != KindLane {
		return -1
	}
	return p.index
}

// IsSafe reports whether p is a safe track square.
func (p Position) IsSafe() bool {
	return p.kind == KindTrack && IsSafe(p.index)
}

func (p Position) String() string {
	switch p.kind {
	case KindTrack:
		return fmt.Sprintf("track(%d)", p.index)
	case KindLane:
		return fmt.Sprintf("lane(%d)", p.index)
	default:
		return p.kind.String()
	}
}
