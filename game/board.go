package game

import "strings"

// Cell holds the owner of a single intersection.
type Cell uint8

const (
	Empty Cell = iota
	Self
	Opponent
)

// CellFromOwner maps a protocol owner tag (1 = this engine, 2 = opponent)
// to a Cell. Any other tag is invalid.
func CellFromOwner(owner int) (Cell, bool) {
	switch owner {
	case 1:
		return Self, true
	case 2:
		return Opponent, true
	default:
		return Empty, false
	}
}

func (c Cell) String() string {
	switch c {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return "empty"
	}
}

// Board is a flat, mutable goban. Cells are stored row-major: the cell at
// (x, y) lives at index y*width+x.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) *Board {
	b := &Board{}
	b.Resize(width, height)
	return b
}

// Resize replaces the grid with a fresh all-empty buffer. Prior contents
// are discarded.
func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

// Clear empties every cell in place, keeping the current dimensions.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Area returns the total number of cells.
func (b *Board) Area() int { return len(b.cells) }

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Board) Index(x, y int) int {
	return y*b.width + x
}

// XY is the inverse of Index.
func (b *Board) XY(idx int) (int, int) {
	return idx % b.width, idx / b.width
}

func (b *Board) At(x, y int) Cell {
	return b.cells[b.Index(x, y)]
}

func (b *Board) Set(x, y int, c Cell) {
	b.cells[b.Index(x, y)] = c
}

func (b *Board) AtIndex(idx int) Cell {
	return b.cells[idx]
}

func (b *Board) SetIndex(idx int, c Cell) {
	b.cells[idx] = c
}

// Center returns the index of the exact center cell.
func (b *Board) Center() int {
	return (b.height/2)*b.width + b.width/2
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// String renders the grid as rows of 0/1/2 digits for debug output.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width*2 + 1) * b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + byte(b.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
