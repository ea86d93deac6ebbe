package searcher

import (
	"fmt"
	"sync"
	"time"

	"ludo/agent"
	"ludo/engine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"
	"ludo/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff bounds the rolls of a rollout when no cutoff is given.
const MaxCutoff = meta.MAX_TURNS

type Option func(mc *MonteCarlo)

// MonteCarlo estimates the value of each legal move by playing random games
// from the position after it. Candidates are chosen with UCT, so a flat
// bandit over the root moves rather than a tree.
type MonteCarlo struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	rollout    agent.Agent
	rules      game.Rules
	seed       uint64
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(mc *MonteCarlo) {
		if duration > 0 {
			mc.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(mc *MonteCarlo) {
		if episodes > 0 {
			mc.episodes = episodes
		}
	}
}

// WithCutoff evaluates the board after depth rolls instead of playing on.
func WithCutoff(depth int) Option {
	return func(mc *MonteCarlo) {
		if depth > 0 {
			mc.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(mc *MonteCarlo) {
		if evaluate != nil {
			mc.evaluate = evaluate
		}
	}
}

// WithRollout sets the agent that plays every color during rollouts. It must
// be safe for concurrent use. The default picks uniformly at random.
func WithRollout(policy agent.Agent) Option {
	return func(mc *MonteCarlo) {
		mc.rollout = policy
	}
}

func WithRules(rules game.Rules) Option {
	return func(mc *MonteCarlo) {
		mc.rules = rules
	}
}

func WithSeed(seed uint64) Option {
	return func(mc *MonteCarlo) {
		mc.seed = seed
	}
}

func WithMetrics() Option {
	return func(mc *MonteCarlo) {
		mc.metrics = metrics.NewCollector()
	}
}

func NewMonteCarlo(goroutines int, options ...Option) *MonteCarlo {
	mc := &MonteCarlo{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateProgress,
		seed:       meta.SEED,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(mc)
	}
	if mc.episodes <= 0 && mc.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return mc
}

// Simulate searches the legal moves of turn and returns the visit count of
// each. A MonteCarlo runs one Simulate at a time.
func (mc *MonteCarlo) Simulate(turn agent.Turn) (map[int]float64, metrics.SearchMetric, error) {
	a, err := mc.search(turn)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	return a.policy(), mc.metrics.Complete(), nil
}

func (mc *MonteCarlo) search(turn agent.Turn) (*arms, error) {
	if len(turn.Legal) == 0 {
		return nil, agent.ErrNoLegalMoves
	}
	root, err := engine.Resume(turn.Board, turn.Color, mc.rules)
	if err != nil {
		return nil, fmt.Errorf("failed to resume search: %w", err)
	}
	root, err = engine.Transition(root, engine.Roll{Value: turn.Roll})
	if err != nil {
		return nil, fmt.Errorf("failed to resume search: %w", err)
	}
	if root.Phase != engine.PhaseMove {
		return nil, fmt.Errorf("failed to resume search: %w", agent.ErrNoLegalMoves)
	}

	a := newArms(turn.Legal)
	mc.metrics.Start(mc.goroutines, mc.cutoff, mc.evaluate)
	mc.metrics.SetCandidates(len(turn.Legal))
	if mc.episodes > 0 {
		mc.iterate(root, a)
	} else {
		mc.countdown(root, a)
	}
	return a, nil
}

func (mc *MonteCarlo) iterate(root engine.TurnState, a *arms) {
	task := make(chan any, mc.episodes)
	for i := 0; i < mc.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < mc.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				mc.simulate(root, a, rng)
				mc.metrics.AddEpisode()
			}
		}(mc.worker(i))
	}

	wg.Wait()
}

func (mc *MonteCarlo) countdown(root engine.TurnState, a *arms) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < mc.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					mc.simulate(root, a, rng)
					mc.metrics.AddEpisode()
				}
			}
		}(mc.worker(i))
	}

	<-time.After(mc.duration)
	close(done)
	wg.Wait()
}

func (mc *MonteCarlo) worker(i int) *rand.Rand {
	return rand.New(rand.NewSource(mc.seed + uint64(i)))
}

func (mc *MonteCarlo) simulate(root engine.TurnState, a *arms, rng *rand.Rand) {
	i := a.pick()
	state, err := engine.Transition(root, engine.Move{PieceID: a.ids[i]})
	if err != nil {
		log.Warn().Err(err).Msgf("candidate %d rejected", a.ids[i])
		a.backup(i, LOSS)
		return
	}
	a.backup(i, mc.playout(state, root.Current, rng))
}

// playout plays on from state until color c's place is decided or the
// cutoff is reached, and returns c's reward.
func (mc *MonteCarlo) playout(state engine.TurnState, c game.Color, rng *rand.Rand) float64 {
	players := len(state.Players)
	for rolls := 0; rolls < mc.cutoff; {
		if place := utils.FindIndex(state.Ranking, c) + 1; place > 0 {
			mc.metrics.AddFullPlayout()
			return placeReward(place, players)
		}

		var err error
		switch state.Phase {
		case engine.PhaseRoll:
			state, err = engine.Transition(state, engine.Roll{Value: rng.Intn(game.DieFaces) + 1})
			rolls++
		case engine.PhaseMove:
			state, err = engine.Transition(state, engine.Move{PieceID: mc.choose(state.Turn(), rng)})
		default:
			err = fmt.Errorf("unexpected phase %s", state.Phase)
		}
		if err != nil {
			log.Warn().Err(err).Msg("rollout aborted")
			return mc.evaluate(state.Board, c)
		}
	}

	if place := utils.FindIndex(state.Ranking, c) + 1; place > 0 {
		mc.metrics.AddFullPlayout()
		return placeReward(place, players)
	}
	return mc.evaluate(state.Board, c)
}

func (mc *MonteCarlo) choose(turn agent.Turn, rng *rand.Rand) int {
	if mc.rollout != nil {
		if id, err := mc.rollout.FindMove(turn); err == nil {
			return id
		}
	}
	return turn.Legal[rng.Intn(len(turn.Legal))]
}
