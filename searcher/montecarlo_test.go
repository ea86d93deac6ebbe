package searcher

import (
	"sync"
	"testing"

	"ludo/agent"
	"ludo/engine"
	"ludo/game"

	"github.com/stretchr/testify/require"
)

func opening() agent.Turn {
	b := game.NewBoard(game.Red, game.Yellow)
	return agent.Turn{Board: b, Color: game.Red, Roll: 6, Legal: game.LegalMoves(b, game.Red, 6)}
}

func TestNewMonteCarlo(t *testing.T) {
	require.Panics(t, func() { NewMonteCarlo(1) }, "Should panic without a budget")
	require.NotPanics(t, func() { NewMonteCarlo(1, WithEpisodes(1)) })
	require.NotPanics(t, func() { NewMonteCarlo(1, WithDuration(1)) })
}

func TestSimulate(t *testing.T) {
	t.Run("spends exactly the episode budget", func(t *testing.T) {
		mc := NewMonteCarlo(4, WithEpisodes(40), WithCutoff(30), WithMetrics())

		policy, metric, err := mc.Simulate(opening())
		require.NoError(t, err)

		require.Equal(t, 40, metric.Episodes)
		require.Equal(t, 4, metric.Candidates)
		require.Equal(t, 30, metric.Cutoff)
		require.Len(t, policy, 4)
		total := 0.0
		for id, visits := range policy {
			require.Contains(t, []int{0, 1, 2, 3}, id)
			require.Greater(t, visits, 0.0, "Every candidate should be tried")
			total += visits
		}
		require.Equal(t, 40.0, total)
	})

	t.Run("time budget", func(t *testing.T) {
		mc := NewMonteCarlo(2, WithDuration(20_000_000), WithCutoff(10), WithMetrics())

		_, metric, err := mc.Simulate(opening())
		require.NoError(t, err)
		require.Greater(t, metric.Episodes, 0)
	})

	t.Run("no legal moves", func(t *testing.T) {
		mc := NewMonteCarlo(1, WithEpisodes(5))
		turn := opening()
		turn.Roll = 3
		turn.Legal = nil

		_, _, err := mc.Simulate(turn)
		require.ErrorIs(t, err, agent.ErrNoLegalMoves)
	})

	t.Run("single worker with a seed is deterministic", func(t *testing.T) {
		b := game.NewBoard(game.Red, game.Green).
			With(game.Red, 0, game.Track(10)).
			With(game.Red, 1, game.Track(30)).
			With(game.Green, 0, game.Track(14))
		turn := agent.Turn{Board: b, Color: game.Red, Roll: 4, Legal: game.LegalMoves(b, game.Red, 4)}

		first, _, err := NewMonteCarlo(1, WithEpisodes(30), WithCutoff(20), WithSeed(9)).Simulate(turn)
		require.NoError(t, err)
		second, _, err := NewMonteCarlo(1, WithEpisodes(30), WithCutoff(20), WithSeed(9)).Simulate(turn)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("full playouts are counted", func(t *testing.T) {
		b := game.NewBoard(game.Red, game.Yellow).
			With(game.Red, 0, game.Home()).
			With(game.Red, 1, game.Home()).
			With(game.Red, 2, game.Lane(3)).
			With(game.Red, 3, game.Lane(3))
		turn := agent.Turn{Board: b, Color: game.Red, Roll: 2, Legal: game.LegalMoves(b, game.Red, 2)}
		mc := NewMonteCarlo(1, WithEpisodes(10), WithMetrics())

		_, metric, err := mc.Simulate(turn)
		require.NoError(t, err)
		require.Equal(t, 10, metric.FullPlayouts, "Without a cutoff every episode plays to the end")
	})

	t.Run("heuristic rollouts", func(t *testing.T) {
		mc := NewMonteCarlo(2, WithEpisodes(8), WithCutoff(15), WithRollout(agent.NewHeuristic()))

		policy, _, err := mc.Simulate(opening())
		require.NoError(t, err)
		require.Len(t, policy, 4)
	})
}

func TestAgents(t *testing.T) {
	t.Run("single legal move skips the search", func(t *testing.T) {
		a := NewEvaluationAgent(NewMonteCarlo(1, WithEpisodes(50), WithMetrics()))
		b := game.NewBoard(game.Red, game.Yellow).With(game.Red, 0, game.Track(10))

		id, err := a.FindMove(agent.Turn{Board: b, Color: game.Red, Roll: 3, Legal: []int{0}})

		require.NoError(t, err)
		require.Equal(t, 0, id)
		metric := a.(engine.Reporter).LastMetric()
		require.Zero(t, metric.Episodes)
		require.Equal(t, 1, metric.Candidates)
	})

	t.Run("evaluation agent reports its search", func(t *testing.T) {
		a := NewEvaluationAgent(NewMonteCarlo(2, WithEpisodes(12), WithCutoff(10), WithMetrics()))

		id, err := a.FindMove(opening())

		require.NoError(t, err)
		require.Contains(t, opening().Legal, id)
		require.Equal(t, 12, a.(engine.Reporter).LastMetric().Episodes)
	})

	t.Run("training agent samples a legal move", func(t *testing.T) {
		a := NewTrainingAgent(NewMonteCarlo(2, WithEpisodes(12), WithCutoff(10), WithMetrics()), 1.0, 3)

		id, err := a.FindMove(opening())

		require.NoError(t, err)
		require.Contains(t, opening().Legal, id)
		require.Equal(t, 12, a.(engine.Reporter).LastMetric().Episodes)
	})

	t.Run("plays a match", func(t *testing.T) {
		cfg := engine.Config{Players: []engine.Player{{Color: game.Red}, {Color: game.Yellow}}}
		agents := map[game.Color]agent.Agent{
			game.Red:    NewEvaluationAgent(NewMonteCarlo(2, WithEpisodes(8), WithCutoff(10), WithMetrics())),
			game.Yellow: agent.NewHeuristic(),
		}
		m, err := engine.NewMatch(cfg, agents, engine.NewDice(5), engine.WithMaxRolls(60))
		require.NoError(t, err)

		_, _, moves, err := m.Run()
		require.NoError(t, err)
		require.NotEmpty(t, moves)
	})
}

func TestArms(t *testing.T) {
	t.Run("arms try every candidate before exploiting", func(t *testing.T) {
		a := newArms([]int{3, 1, 2})

		require.Equal(t, 0, a.pick())
		require.Equal(t, 1, a.pick())
		require.Equal(t, 2, a.pick())
	})

	t.Run("backup reverses the virtual loss", func(t *testing.T) {
		a := newArms([]int{0})
		i := a.pick()
		require.Equal(t, LOSS, a.rewards[i])

		a.backup(i, WIN)

		require.Equal(t, WIN, a.rewards[i])
		require.Equal(t, 1, a.visits[i])
	})

	t.Run("concurrent picks spread over unvisited arms", func(t *testing.T) {
		a := newArms([]int{0, 1})

		var wg sync.WaitGroup
		var got [2]int
		for i := 0; i < 2; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i] = a.pick()
			}()
		}
		wg.Wait()

		require.NotEqual(t, got[0], got[1], "Virtual loss should steer workers to different arms")
		require.Equal(t, []int{1, 1}, a.visits)
		require.Equal(t, []float64{LOSS, LOSS}, a.rewards)
	})

	t.Run("concurrent backups are all counted", func(t *testing.T) {
		a := newArms([]int{0})
		for i := 0; i < 50; i++ {
			a.pick()
		}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				a.backup(0, WIN)
			}()
		}
		wg.Wait()

		require.Equal(t, 50, a.visits[0])
		require.InDelta(t, 50*WIN, a.rewards[0], 1e-9)
	})

	t.Run("best is the most visited", func(t *testing.T) {
		a := newArms([]int{5, 6})
		a.visits = []int{2, 4}
		a.rewards = []float64{2, -1}

		require.Equal(t, 6, a.best())
		require.Equal(t, map[int]float64{5: 2, 6: 4}, a.policy())
	})

	t.Run("temperature keeps a distribution", func(t *testing.T) {
		adjusted := adjustTemperature(map[int]float64{0: 1, 1: 3}, 1.0)
		require.InDelta(t, 0.25, adjusted[0], 1e-9)
		require.InDelta(t, 0.75, adjusted[1], 1e-9)

		sharp := adjustTemperature(map[int]float64{0: 1, 1: 3}, 0.5)
		require.Greater(t, sharp[1], adjusted[1], "Lower temperature should favor the most visited move")

		require.Equal(t, 0, sample(adjusted, 0.1))
		require.Equal(t, 1, sample(adjusted, 0.3))
		require.Equal(t, 1, sample(adjusted, 0.99999))
	})
}
