package game

// Candidates returns the empty cells worth searching, in row-major order:
// every empty cell with at least one stone within Chebyshev distance 1.
// Restricting the search to this frontier is what keeps full-width
// fixed-depth search tractable on large boards.
//
// When the frontier is empty (opening move, or a degenerate position) the
// fallback is the center cell if it is empty, else the first empty cell in
// row-major order. A full board yields no candidates.
func Candidates(b *Board) []int {
	moves := []int{}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) == Empty && hasNeighbor(b, x, y) {
				moves = append(moves, b.Index(x, y))
			}
		}
	}
	if len(moves) > 0 {
		return moves
	}
	if center := b.Center(); b.AtIndex(center) == Empty {
		return []int{center}
	}
	for i := 0; i < b.Area(); i++ {
		if b.AtIndex(i) == Empty {
			return []int{i}
		}
	}
	return nil
}

func hasNeighbor(b *Board, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) && b.At(nx, ny) != Empty {
				return true
			}
		}
	}
	return false
}
