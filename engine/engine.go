package engine

import (
	"fmt"

	"ludo/agent"
	"ludo/game"

	"github.com/rs/zerolog/log"
)

// Engine holds the single current TurnState of a game and feeds inputs
// through Transition. It is not safe for concurrent use; callers serialize
// operations.
type Engine struct {
	state   TurnState
	advisor agent.Agent
}

type Option func(e *Engine)

// WithAdvisor sets the agent SuggestMove asks. The default is the heuristic
// with default weights.
func WithAdvisor(advisor agent.Agent) Option {
	return func(e *Engine) {
		if advisor != nil {
			e.advisor = advisor
		}
	}
}

func New(options ...Option) *Engine {
	e := &Engine{advisor: agent.NewHeuristic()}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) State() TurnState {
	return e.state
}

func (e *Engine) Start(cfg Config) (TurnState, error) {
	return e.apply(Start{Config: cfg})
}

func (e *Engine) Roll(value int) (TurnState, error) {
	return e.apply(Roll{Value: value})
}

func (e *Engine) Move(id int) (TurnState, error) {
	return e.apply(Move{PieceID: id})
}

func (e *Engine) Reset() TurnState {
	state, _ := e.apply(Reset{})
	return state
}

// SuggestMove asks the advisor which legal piece the current color should
// move. It does not change the state.
func (e *Engine) SuggestMove() (int, error) {
	if e.state.Phase != PhaseMove {
		return 0, fmt.Errorf("%w: no move to suggest in %s", ErrWrongPhase, e.state.Phase)
	}
	return e.advisor.FindMove(e.state.Turn())
}

func (e *Engine) apply(ev Event) (TurnState, error) {
	next, err := Transition(e.state, ev)
	if err != nil {
		log.Debug().Err(err).Msgf("rejected %T in %s", ev, e.state.Phase)
		return e.state, err
	}
	log.Debug().Msgf("%T: %s to act in %s", ev, next.Current, next.Phase)
	e.state = next
	return next, nil
}

// Resume builds a state for a game already in progress on board b, waiting
// for a roll from color current. Turn order follows the canonical color
// order and colors that have finished are ranked in that order too.
func Resume(b game.Board, current game.Color, rules game.Rules) (TurnState, error) {
	colors := b.Colors()
	if len(colors) < 2 {
		return TurnState{}, fmt.Errorf("%w: got %d", ErrPlayerCount, len(colors))
	}
	if !b.Active(current) || game.HasFinished(b, current) {
		return TurnState{}, fmt.Errorf("%w: %s", ErrColorNotPlaying, current)
	}

	s := TurnState{
		Board:   b,
		Rules:   rules,
		Phase:   PhaseRoll,
		Current: current,
		Ranking: game.Finished(b),
	}
	for _, c := range colors {
		s.Players = append(s.Players, Player{Color: c, Type: Computer})
	}
	if active := s.Active(); len(active) < 2 {
		s.Ranking = append(s.Ranking, active...)
		s.Phase = PhaseGameOver
	}
	return s, nil
}
