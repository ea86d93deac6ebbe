package engine

import (
	"fmt"

	"ludo/game"
	"ludo/utils"

	"golang.org/x/exp/slices"
)

// Event is an input to the state machine: Start, Roll, Move or Reset.
type Event interface {
	event()
}

// Start begins a game with the configured players.
type Start struct {
	Config Config
}

// Roll submits a die value for the current color.
type Roll struct {
	Value int
}

// Move submits the piece the current color moves for its roll.
type Move struct {
	PieceID int
}

// Reset discards the game and returns to setup.
type Reset struct{}

func (Start) event() {}
func (Roll) event()  {}
func (Move) event()  {}
func (Reset) event() {}

// Transition applies ev to s and returns the next state. A rejected event
// returns s unchanged along with the reason.
func Transition(s TurnState, ev Event) (TurnState, error) {
	switch ev := ev.(type) {
	case Start:
		return start(s, ev.Config)
	case Roll:
		return roll(s, ev.Value)
	case Move:
		return move(s, ev.PieceID)
	case Reset:
		return TurnState{}, nil
	default:
		return s, fmt.Errorf("unknown event %T", ev)
	}
}

func start(s TurnState, cfg Config) (TurnState, error) {
	if s.Phase != PhaseSetup {
		return s, fmt.Errorf("%w: cannot start in %s", ErrWrongPhase, s.Phase)
	}
	if err := cfg.Validate(); err != nil {
		return s, err
	}

	colors := cfg.Colors()
	next := TurnState{
		Board:   game.NewBoard(colors...),
		Players: slices.Clone(cfg.Players),
		Rules:   cfg.Rules,
		Phase:   PhaseRoll,
		Current: colors[0],
	}
	return next.record(EntryInfo, next.Current, "Game started! %s plays first.", next.name(next.Current)), nil
}

func roll(s TurnState, value int) (TurnState, error) {
	if s.Phase != PhaseRoll {
		return s, fmt.Errorf("%w: cannot roll in %s", ErrWrongPhase, s.Phase)
	}
	if !game.ValidRoll(value) {
		return s, fmt.Errorf("%w: %d", ErrInvalidRoll, value)
	}

	next := s
	next.Roll = value
	next.Legal = nil
	if value == game.ExitRoll {
		next.Sixes++
	} else {
		next.Sixes = 0
	}
	name := s.name(s.Current)

	if limit := s.Rules.MaxConsecutiveSixes; limit > 0 && next.Sixes >= limit {
		next = next.record(EntryRoll, s.Current, "%s rolled %d sixes in a row and loses the turn.", name, next.Sixes)
		return next.advance(), nil
	}

	legal := s.Rules.LegalMoves(s.Board, s.Current, value)
	if len(legal) > 0 {
		next.Legal = legal
		next.Phase = PhaseMove
		return next.record(EntryRoll, s.Current, "%s rolled a %d.", name, value), nil
	}

	next = next.record(EntryRoll, s.Current, "%s rolled a %d, but has no moves.", name, value)
	if value == game.ExitRoll {
		return next, nil
	}
	return next.advance(), nil
}

func move(s TurnState, id int) (TurnState, error) {
	if s.Phase != PhaseMove {
		return s, fmt.Errorf("%w: cannot move in %s", ErrWrongPhase, s.Phase)
	}
	if !slices.Contains(s.Legal, id) {
		return s, fmt.Errorf("%w: %s#%d for roll %d", ErrIllegalPiece, s.Current, id, s.Roll)
	}
	board, result, err := game.ApplyMove(s.Board, s.Current, id, s.Roll)
	if err != nil {
		return s, err
	}

	next := s
	next.Board = board
	next.Legal = nil
	next.Phase = PhaseRoll
	next.LastMove = &result
	name := s.name(s.Current)

	switch {
	case result.Captured:
		next = next.record(EntryCapture, s.Current, "%s captured %s!", name, victims(s, result.Victims))
	case result.Arrived:
		next = next.record(EntryMove, s.Current, "%s brought a piece home!", name)
	default:
		next = next.record(EntryMove, s.Current, "%s moved a piece to %s.", name, result.Piece.Position)
	}

	if game.HasFinished(board, s.Current) {
		return next.finish(s.Current), nil
	}

	again := s.Roll == game.ExitRoll || result.Captured ||
		(s.Rules.ExtraTurnOnArrival && result.Arrived)
	if again {
		return next, nil
	}
	return next.advance(), nil
}

// finish ranks color c and either ends the game or passes the turn.
func (s TurnState) finish(c game.Color) TurnState {
	s.Ranking = append(slices.Clone(s.Ranking), c)
	place := len(s.Ranking)
	if place == 1 {
		s = s.record(EntryWin, c, "%s wins the game!", s.name(c))
	} else {
		s = s.record(EntryWin, c, "%s finishes %s.", s.name(c), ordinal(place))
	}

	active := s.Active()
	if len(active) > 1 {
		return s.advance()
	}
	for _, last := range active {
		s.Ranking = append(s.Ranking, last)
		s = s.record(EntryInfo, last, "%s finishes last.", s.name(last))
	}
	s.Phase = PhaseGameOver
	s.Legal = nil
	s.Sixes = 0
	return s.record(EntryInfo, c, "Game over.")
}

// advance passes the turn to the next color in turn order that has not
// finished and waits for its roll.
func (s TurnState) advance() TurnState {
	order := s.Order()
	i := utils.FindIndex(order, s.Current)
	for step := 1; step <= len(order); step++ {
		c := order[(i+step)%len(order)]
		if !s.hasRanked(c) {
			s.Current = c
			break
		}
	}
	s.Phase = PhaseRoll
	s.Legal = nil
	s.Sixes = 0
	return s
}

func victims(s TurnState, pieces []game.Piece) string {
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = fmt.Sprintf("a piece of %s", s.name(p.Color))
	}
	if len(names) == 1 {
		return names[0]
	}
	return fmt.Sprintf("%d pieces", len(names))
}
