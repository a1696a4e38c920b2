package game

// The four forward directions: right, down, down-right, up-right. Together
// with every possible starting cell they cover all winning lines exactly
// once per orientation.
var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// HasFiveInRow reports whether owner has an unbroken run of five or more
// stones in any direction.
func HasFiveInRow(b *Board, owner Cell) bool {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != owner {
				continue
			}
			for _, d := range directions {
				if runFrom(b, x, y, d[0], d[1], owner) >= 5 {
					return true
				}
			}
		}
	}
	return false
}

// runFrom counts consecutive owner cells starting at (x, y) and stepping
// by (dx, dy), capped at 5.
func runFrom(b *Board, x, y, dx, dy int, owner Cell) int {
	length := 0
	for length < 5 && b.InBounds(x, y) && b.At(x, y) == owner {
		length++
		x += dx
		y += dy
	}
	return length
}
