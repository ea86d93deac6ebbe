package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	t.Run("zero value is base", func(t *testing.T) {
		var p Position
		require.True(t, p.IsBase(), "Zero position should be the base")
		require.Equal(t, Base(), p)
	})

	t.Run("constructors reject out-of-range indices", func(t *testing.T) {
		require.Panics(t, func() { Track(-1) }, "Should panic below the track")
		require.Panics(t, func() { Track(TrackLength) }, "Should panic past the track")
		require.Panics(t, func() { Lane(-1) }, "Should panic below the lane")
		require.Panics(t, func() { Lane(LaneLength - 1) }, "Arrival square is Home, not a lane offset")
		require.NotPanics(t, func() { Lane(LaneLength - 2) })
	})

	t.Run("accessors are tag-specific", func(t *testing.T) {
		require.Equal(t, 17, Track(17).Square())
		require.Equal(t, -1, Track(17).Offset(), "Track position has no lane offset")
		require.Equal(t, 3, Lane(3).Offset())
		require.Equal(t, -1, Lane(3).Square(), "Lane position has no track square")
		require.True(t, Track(3).InPlay())
		require.True(t, Lane(0).InPlay())
		require.False(t, Home().InPlay())
		require.False(t, Base().InPlay())
	})

	t.Run("lane offsets of different colors compare equal but never share a slot", func(t *testing.T) {
		red, _ := Slot(Lane(2), Red)
		blue, _ := Slot(Lane(2), Blue)
		require.NotEqual(t, red, blue)
	})

	t.Run("string form", func(t *testing.T) {
		require.Equal(t, "base", Base().String())
		require.Equal(t, "track(5)", Track(5).String())
		require.Equal(t, "lane(1)", Lane(1).String())
		require.Equal(t, "home", Home().String())
	})
}

func TestSlot(t *testing.T) {
	t.Run("track squares map to themselves", func(t *testing.T) {
		for _, c := range AllColors {
			slot, ok := Slot(Track(12), c)
			require.True(t, ok)
			require.Equal(t, 12, slot)
		}
	})

	t.Run("lanes follow the track in canonical color order", func(t *testing.T) {
		slot, _ := Slot(Lane(0), Red)
		require.Equal(t, 52, slot)
		slot, _ = Slot(Lane(0), Green)
		require.Equal(t, 58, slot)
		slot, _ = Slot(Lane(4), Yellow)
		require.Equal(t, 68, slot)
	})

	t.Run("home is the last slot of the lane", func(t *testing.T) {
		slot, ok := Slot(Home(), Red)
		require.True(t, ok)
		require.Equal(t, 57, slot)
		slot, _ = Slot(Home(), Blue)
		require.Equal(t, SlotCount-1, slot)
	})

	t.Run("base has no slot", func(t *testing.T) {
		_, ok := Slot(Base(), Green)
		require.False(t, ok)
	})
}

func TestGeometry(t *testing.T) {
	t.Run("every start square is safe", func(t *testing.T) {
		for _, c := range AllColors {
			require.True(t, IsSafe(c.StartSquare()), "%s start should be safe", c)
		}
	})

	t.Run("home entrance sits just behind the start", func(t *testing.T) {
		for _, c := range AllColors {
			require.Equal(t, (c.StartSquare()+TrackLength-1)%TrackLength, c.HomeEntrance())
		}
	})

	t.Run("safe squares", func(t *testing.T) {
		require.Equal(t, []int{0, 8, 13, 21, 26, 34, 39, 47}, SafeSquares())
	})

	t.Run("start owner", func(t *testing.T) {
		c, ok := StartOwner(26)
		require.True(t, ok)
		require.Equal(t, Yellow, c)
		_, ok = StartOwner(8)
		require.False(t, ok, "Square 8 is safe but nobody's start")
	})
}

func TestColor(t *testing.T) {
	t.Run("parse is case-insensitive", func(t *testing.T) {
		c, err := ParseColor(" Yellow ")
		require.NoError(t, err)
		require.Equal(t, Yellow, c)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseColor("purple")
		require.ErrorIs(t, err, ErrUnknownColor)
	})

	t.Run("display name", func(t *testing.T) {
		require.Equal(t, "Green", Green.Title())
		require.Equal(t, "blue", Blue.String())
	})

	t.Run("text round trip", func(t *testing.T) {
		text, err := Blue.MarshalText()
		require.NoError(t, err)
		var c Color
		require.NoError(t, c.UnmarshalText(text))
		require.Equal(t, Blue, c)
	})
}
