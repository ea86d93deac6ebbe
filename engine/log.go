package engine

import (
	"fmt"

	"ludo/game"
)

type EntryKind int

const (
	EntryInfo EntryKind = iota
	EntryRoll
	EntryMove
	EntryCapture
	EntryWin
)

func (k EntryKind) String() string {
	switch k {
	case EntryRoll:
		return "roll"
	case EntryMove:
		return "move"
	case EntryCapture:
		return "capture"
	case EntryWin:
		return "win"
	default:
		return "info"
	}
}

// Entry is a human-readable record of something that happened. No rule
// reads the log.
type Entry struct {
	Kind    EntryKind
	Color   game.Color
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// record returns s with an entry appended to a fresh copy of its log.
func (s TurnState) record(kind EntryKind, c game.Color, format string, args ...any) TurnState {
	log := make([]Entry, len(s.Log), len(s.Log)+1)
	copy(log, s.Log)
	s.Log = append(log, Entry{Kind: kind, Color: c, Message: fmt.Sprintf(format, args...)})
	return s
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
