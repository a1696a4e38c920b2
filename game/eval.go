package game

// Run weights. A run of five or more is a won line; shorter runs are
// weighted by how many of their ends are open.
const (
	fiveScore        = 10_000_000
	openFourScore    = 100_000
	closedFourScore  = 10_000
	openThreeScore   = 10_000
	closedThreeScore = 1_000
	openTwoScore     = 1_000
	closedTwoScore   = 100
)

// opponentWeight biases the evaluation toward blocking: the opponent's
// threats count half again as much as the engine's own.
const opponentWeight = 1.5

// Evaluate is the static heuristic scorer used at search leaves. Positive
// favors the engine, negative the opponent. The result is truncated to an
// integer.
func Evaluate(b *Board) int {
	return int(float64(PatternScore(b, Self)) - opponentWeight*float64(PatternScore(b, Opponent)))
}

// PatternScore sums a per-run weight over every maximal contiguous run of
// owner's stones in the four line directions. A cell only starts a run when
// its predecessor along the direction is not also owner, so each maximal
// run contributes exactly once.
func PatternScore(b *Board, owner Cell) int {
	total := 0
	for _, d := range directions {
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if b.At(x, y) != owner {
					continue
				}
				px, py := x-d[0], y-d[1]
				if b.InBounds(px, py) && b.At(px, py) == owner {
					continue
				}
				length := 0
				nx, ny := x, y
				for b.InBounds(nx, ny) && b.At(nx, ny) == owner {
					length++
					nx += d[0]
					ny += d[1]
				}
				openStart := b.InBounds(px, py) && b.At(px, py) == Empty
				openEnd := b.InBounds(nx, ny) && b.At(nx, ny) == Empty
				total += runScore(length, openStart, openEnd)
			}
		}
	}
	return total
}

func runScore(length int, openStart, openEnd bool) int {
	if length >= 5 {
		return fiveScore
	}
	open := 0
	if openStart {
		open++
	}
	if openEnd {
		open++
	}
	if open == 0 {
		return 0
	}
	switch {
	case length == 4 && open == 2:
		return openFourScore
	case length == 4:
		return closedFourScore
	case length == 3 && open == 2:
		return openThreeScore
	case length == 3:
		return closedThreeScore
	case length == 2 && open == 2:
		return openTwoScore
	case length == 2:
		return closedTwoScore
	default:
		return 0
	}
}
