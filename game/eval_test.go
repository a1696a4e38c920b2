package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatternScoreRuns(t *testing.T) {
	t.Run("open four scores 100000", func(t *testing.T) {
		// Self stones at (5,5)..(5,8), open on both ends.
		b := NewBoard(20, 20)
		placeRun(b, 5, 5, 0, 1, 4, Self)

		require.Equal(t, 100_000, PatternScore(b, Self))
	})

	t.Run("four with one open end scores 10000", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 0, 5, 1, 0, 4, Self) // start blocked by the edge

		require.Equal(t, 10_000, PatternScore(b, Self))
	})

	t.Run("four with both ends blocked scores 0", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 5, 5, 1, 0, 4, Self)
		b.Set(4, 5, Opponent)
		b.Set(9, 5, Opponent)

		require.Equal(t, 0, PatternScore(b, Self))
	})

	t.Run("open three scores 10000", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 5, 5, 1, 1, 3, Self)

		require.Equal(t, 10_000, PatternScore(b, Self))
	})

	t.Run("half-open three scores 1000", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 5, 5, 1, 0, 3, Self)
		b.Set(4, 5, Opponent)

		// Self: a half-open three; Opponent: a lone stone scores nothing.
		require.Equal(t, 1_000, PatternScore(b, Self))
		require.Equal(t, 0, PatternScore(b, Opponent))
	})

	t.Run("open two scores 1000 and half-open two scores 100", func(t *testing.T) {
		open := NewBoard(20, 20)
		placeRun(open, 5, 5, 1, 0, 2, Self)
		require.Equal(t, 1_000, PatternScore(open, Self))

		half := NewBoard(20, 20)
		placeRun(half, 0, 5, 1, 0, 2, Self)
		require.Equal(t, 100, PatternScore(half, Self))
	})

	t.Run("single stones score 0", func(t *testing.T) {
		b := NewBoard(20, 20)
		b.Set(5, 5, Self)
		b.Set(10, 10, Self)

		require.Equal(t, 0, PatternScore(b, Self))
	})

	t.Run("five in a row scores 10000000", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 5, 5, 1, 0, 5, Self)

		require.Equal(t, 10_000_000, PatternScore(b, Self))
	})

	t.Run("a maximal run is counted exactly once", func(t *testing.T) {
		// Whatever the scan order, the three stones must contribute a
		// single open-three score, not one per starting cell.
		b := NewBoard(20, 20)
		placeRun(b, 8, 8, 1, -1, 3, Self)

		require.Equal(t, 10_000, PatternScore(b, Self))
	})
}

func TestPatternScoreAntisymmetry(t *testing.T) {
	// Identical geometry must score identically regardless of the owner id.
	shapes := [][4]int{ // x, y, dx, dy for a run of three
		{5, 5, 1, 0},
		{5, 5, 0, 1},
		{5, 5, 1, 1},
		{5, 9, 1, -1},
	}
	for _, s := range shapes {
		selfBoard := NewBoard(20, 20)
		placeRun(selfBoard, s[0], s[1], s[2], s[3], 3, Self)

		oppBoard := NewBoard(20, 20)
		placeRun(oppBoard, s[0], s[1], s[2], s[3], 3, Opponent)

		require.Equal(t, PatternScore(selfBoard, Self), PatternScore(oppBoard, Opponent),
			"pattern score should not depend on the owner id")
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("empty board is neutral", func(t *testing.T) {
		b := NewBoard(20, 20)
		require.Equal(t, 0, Evaluate(b))
	})

	t.Run("opponent threats weigh one and a half times", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 2, 2, 1, 0, 2, Self)       // open two: 1000
		placeRun(b, 10, 10, 1, 0, 2, Opponent) // open two: 1000

		require.Equal(t, 1_000-1_500, Evaluate(b))
	})

	t.Run("favors the engine's own stronger shape", func(t *testing.T) {
		b := NewBoard(20, 20)
		placeRun(b, 2, 2, 1, 0, 4, Self) // open four
		placeRun(b, 10, 10, 1, 0, 2, Opponent)

		require.Greater(t, Evaluate(b), 0)
	})
}
