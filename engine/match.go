package engine

import (
	"fmt"
	"time"

	"ludo/agent"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"

	"github.com/rs/zerolog/log"
)

// Reporter is implemented by agents that measure their own search.
type Reporter interface {
	// LastMetric returns the metric of the most recent FindMove call
	LastMetric() metrics.SearchMetric
}

// Match plays a whole game between agents, one per color, with dice
// supplied by the caller.
type Match struct {
	config   Config
	agents   map[game.Color]agent.Agent
	dice     Dice
	maxRolls int
}

type MatchOption func(m *Match)

// WithMaxRolls bounds the number of rolls before the match is abandoned.
func WithMaxRolls(rolls int) MatchOption {
	return func(m *Match) {
		if rolls > 0 {
			m.maxRolls = rolls
		}
	}
}

func NewMatch(cfg Config, agents map[game.Color]agent.Agent, dice Dice, options ...MatchOption) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, c := range cfg.Colors() {
		if agents[c] == nil {
			return nil, fmt.Errorf("no agent for %s", c)
		}
	}
	m := &Match{
		config:   cfg,
		agents:   agents,
		dice:     dice,
		maxRolls: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// Run plays until the game is over or the roll limit is reached and returns
// the final state.
func (m *Match) Run() (TurnState, metrics.GameMetric, []metrics.MoveMetric, error) {
	e := New()
	state, err := e.Start(m.config)
	if err != nil {
		return state, metrics.GameMetric{}, nil, err
	}

	gameMetric := metrics.GameMetric{
		Starting:  state.Current,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", state.Current)

	for state.Phase != PhaseGameOver && gameMetric.TotalRolls < m.maxRolls {
		state, err = e.Roll(m.dice.Roll())
		if err != nil {
			return state, gameMetric, moveMetrics, fmt.Errorf("failed to roll: %w", err)
		}
		gameMetric.TotalRolls++
		if state.Phase != PhaseMove {
			continue
		}

		mover := state.Current
		player := m.agents[mover]
		id, err := player.FindMove(state.Turn())
		if err != nil {
			return state, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", mover, err)
		}
		moveMetric := metrics.MoveMetric{
			Step:  gameMetric.TotalMoves,
			Roll:  gameMetric.TotalRolls - 1,
			Color: mover,
			Dice:  state.Roll,
			Piece: id,
			Legal: len(state.Legal),
		}
		if reporter, ok := player.(Reporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}

		state, err = e.Move(id)
		if err != nil {
			return state, gameMetric, moveMetrics, fmt.Errorf("%s chose an illegal move: %w", mover, err)
		}
		gameMetric.TotalMoves++
		moveMetric.Captured = state.LastMove.Captured
		moveMetric.Arrived = state.LastMove.Arrived
		moveMetric.Hash = state.Board.Hash()
		moveMetrics = append(moveMetrics, moveMetric)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Ranking = state.Ranking
	gameMetric.Completed = state.Phase == PhaseGameOver

	if winner, ok := state.Winner(); ok {
		log.Debug().Msgf("%s won after %d rolls", winner, gameMetric.TotalRolls)
	} else {
		log.Debug().Msgf("stopped after %d rolls without a winner", gameMetric.TotalRolls)
	}
	return state, gameMetric, moveMetrics, nil
}
