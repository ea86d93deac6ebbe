package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("exit roll frees every piece from an empty start", func(t *testing.T) {
		b := NewBoard(Red, Yellow)

		require.Equal(t, []int{0, 1, 2, 3}, LegalMoves(b, Red, 6))
	})

	t.Run("no piece leaves the base without a six", func(t *testing.T) {
		b := NewBoard(Red, Yellow)

		for r := 1; r < ExitRoll; r++ {
			require.Empty(t, LegalMoves(b, Red, r), "roll %d", r)
		}
	})

	t.Run("own pair on the start square blocks the exit", func(t *testing.T) {
		b := NewBoard(Red, Yellow).
			With(Red, 0, Red.Start()).
			With(Red, 1, Red.Start())

		require.Equal(t, []int{0, 1}, LegalMoves(b, Red, 6),
			"Only the pieces already out should move")
	})

	t.Run("a single own piece on the start square does not block the exit", func(t *testing.T) {
		b := NewBoard(Red, Yellow).With(Red, 0, Red.Start())

		require.Equal(t, []int{0, 1, 2, 3}, LegalMoves(b, Red, 6))
	})

	t.Run("overshooting pieces are excluded", func(t *testing.T) {
		b := NewBoard(Red, Yellow).
			With(Red, 0, Lane(4)).
			With(Red, 1, Track(20))

		require.Equal(t, []int{1}, LegalMoves(b, Red, 2), "lane 4 + 2 overshoots")
		require.Equal(t, []int{0, 1}, LegalMoves(b, Red, 1), "lane 4 + 1 arrives")
	})

	t.Run("home pieces never move", func(t *testing.T) {
		b := NewBoard(Red, Yellow).With(Red, 0, Home())

		for r := 1; r <= DieFaces; r++ {
			require.NotContains(t, LegalMoves(b, Red, r), 0)
		}
	})

	t.Run("opposing blockade obstructs passage and landing", func(t *testing.T) {
		b := NewBoard(Red, Green).
			With(Red, 0, Track(3)).
			With(Green, 0, Track(5)).
			With(Green, 1, Track(5))

		require.Empty(t, LegalMoves(b, Red, 4), "Passing through the blockade")
		require.Empty(t, LegalMoves(b, Red, 2), "Landing on the blockade")
		require.Equal(t, []int{0}, LegalMoves(b, Red, 1), "Stopping short of it")
	})

	t.Run("landing-only variant lets pieces pass a blockade", func(t *testing.T) {
		rules := Rules{Blockade: BlockLanding}
		b := NewBoard(Red, Green).
			With(Red, 0, Track(3)).
			With(Green, 0, Track(5)).
			With(Green, 1, Track(5))

		require.Equal(t, []int{0}, rules.LegalMoves(b, Red, 4))
		require.Empty(t, rules.LegalMoves(b, Red, 2))
	})

	t.Run("stacks on safe squares do not obstruct by default", func(t *testing.T) {
		b := NewBoard(Red, Green).
			With(Red, 0, Track(6)).
			With(Green, 0, Track(8)).
			With(Green, 1, Track(8))

		require.Equal(t, []int{0}, LegalMoves(b, Red, 3))
		require.Empty(t, Rules{SafeBlockades: true}.LegalMoves(b, Red, 3),
			"Safe blockades variant should obstruct")
	})

	t.Run("safe blockades variant keeps pieces in the base behind a rival stack", func(t *testing.T) {
		b := NewBoard(Red, Blue).
			With(Blue, 0, Red.Start()).
			With(Blue, 1, Red.Start())
		rules := Rules{SafeBlockades: true}

		require.True(t, rules.Blockaded(b, Red.Start(), Red))
		require.Empty(t, rules.LegalMoves(b, Red, 6), "Exit onto an opposing blockade should be illegal")
		require.Equal(t, []int{0, 1, 2, 3}, LegalMoves(b, Red, 6), "Stacks on the start square do not obstruct by default")
	})

	t.Run("own pair never obstructs its own color", func(t *testing.T) {
		b := NewBoard(Red, Green).
			With(Red, 0, Track(3)).
			With(Red, 1, Track(5)).
			With(Red, 2, Track(5))

		require.Contains(t, LegalMoves(b, Red, 4), 0)
	})

	t.Run("a single opposing piece does not obstruct", func(t *testing.T) {
		b := NewBoard(Red, Green).
			With(Red, 0, Track(3)).
			With(Green, 0, Track(5))

		require.Equal(t, []int{0}, LegalMoves(b, Red, 4))
	})

	t.Run("invalid input yields nothing", func(t *testing.T) {
		b := NewBoard(Red, Green).With(Red, 0, Track(3))

		require.Nil(t, LegalMoves(b, Red, 0))
		require.Nil(t, LegalMoves(b, Red, 7))
		require.Nil(t, LegalMoves(b, Blue, 6), "Blue is not playing")
	})

	t.Run("legality is a pure function of its inputs", func(t *testing.T) {
		b := NewBoard(Red, Green, Blue).
			With(Red, 0, Track(3)).
			With(Red, 1, Lane(2)).
			With(Green, 0, Track(5)).
			With(Green, 1, Track(5))
		before := b

		first := LegalMoves(b, Red, 6)
		second := LegalMoves(b, Red, 6)

		require.Equal(t, first, second)
		require.Equal(t, before, b, "Board should not change")
	})
}
