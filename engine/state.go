package engine

import (
	"errors"
	"fmt"

	"ludo/agent"
	"ludo/game"

	"golang.org/x/exp/slices"
)

var (
	ErrWrongPhase      = errors.New("operation not allowed in this phase")
	ErrInvalidRoll     = errors.New("invalid roll")
	ErrIllegalPiece    = errors.New("piece is not among the legal moves")
	ErrPlayerCount     = errors.New("a game needs 2 to 4 players")
	ErrDuplicateColor  = errors.New("color configured twice")
	ErrColorNotPlaying = errors.New("color cannot take a turn")
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRoll
	PhaseMove
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRoll:
		return "roll"
	case PhaseMove:
		return "move"
	case PhaseGameOver:
		return "gameover"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type PlayerType int

const (
	Human PlayerType = iota
	Computer
)

func (t PlayerType) String() string {
	if t == Computer {
		return "computer"
	}
	return "human"
}

// Player describes a participant. Name and Type are informational only.
type Player struct {
	Color game.Color
	Name  string
	Type  PlayerType
}

// DisplayName is the name used in the event log.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Color.Title()
}

// Config lists the participants in turn order.
type Config struct {
	Players []Player
	Rules   game.Rules
}

func (c Config) Validate() error {
	if len(c.Players) < 2 || len(c.Players) > game.NumColors {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(c.Players))
	}
	var seen [game.NumColors]bool
	for _, p := range c.Players {
		if !p.Color.Valid() {
			return fmt.Errorf("%w: %d", game.ErrUnknownColor, int(p.Color))
		}
		if seen[p.Color] {
			return fmt.Errorf("%w: %s", ErrDuplicateColor, p.Color)
		}
		seen[p.Color] = true
	}
	return nil
}

func (c Config) Colors() []game.Color {
	colors := make([]game.Color, len(c.Players))
	for i, p := range c.Players {
		colors[i] = p.Color
	}
	return colors
}

// TurnState is a snapshot of a game. It is replaced, never modified, by
// Transition; the slices it holds must be treated as read-only.
type TurnState struct {
	Board   game.Board
	Players []Player
	Rules   game.Rules
	Phase   Phase
	Current game.Color
	Roll    int   // last roll, zero before the first one
	Legal   []int // piece ids the current color may move, set in PhaseMove
	Ranking []game.Color
	Sixes   int // consecutive sixes rolled by the current color
	// LastMove is the result of the most recent move, nil before the first.
	LastMove *game.Result
	Log      []Entry
}

// Order returns the colors in turn order.
func (s TurnState) Order() []game.Color {
	return Config{Players: s.Players}.Colors()
}

// Active returns the colors still racing, in turn order.
func (s TurnState) Active() []game.Color {
	var colors []game.Color
	for _, c := range s.Order() {
		if !s.hasRanked(c) {
			colors = append(colors, c)
		}
	}
	return colors
}

// Player returns the participant playing color c.
func (s TurnState) Player(c game.Color) (Player, bool) {
	for _, p := range s.Players {
		if p.Color == c {
			return p, true
		}
	}
	return Player{}, false
}

// Winner is the first color to finish.
func (s TurnState) Winner() (game.Color, bool) {
	if len(s.Ranking) == 0 {
		return 0, false
	}
	return s.Ranking[0], true
}

// Turn is the view an agent gets of a state in PhaseMove.
func (s TurnState) Turn() agent.Turn {
	return agent.Turn{
		Board: s.Board,
		Color: s.Current,
		Roll:  s.Roll,
		Legal: s.Legal,
	}
}

func (s TurnState) hasRanked(c game.Color) bool {
	return slices.Contains(s.Ranking, c)
}

func (s TurnState) name(c game.Color) string {
	if p, ok := s.Player(c); ok {
		return p.DisplayName()
	}
	return c.Title()
}
