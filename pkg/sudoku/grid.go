package sudoku

import (
	"fmt"
	"strings"
)

const (
	// Size is the edge length of the grid and the number of values.
	Size = 9

	// GridSize is the total number of cells.
	GridSize = Size * Size
)

// allValues is the occupancy mask with every value 1..9 present. Value v
// occupies bit 1<<v; bit zero stays unused.
const allValues = 1<<(Size+1) - 2

// Grid is a sudoku grid in row-major order; 0 marks an empty cell. Grids are
// mutated in place by every pipeline stage, and the row/column/box rules are
// only guaranteed to hold for a solved grid.
type Grid [GridSize]uint8

// Index returns the cell index for column x and row y.
func Index(x, y int) int { return y*Size + x }

// Box returns the index of the 3×3 box containing (x, y).
func Box(x, y int) int { return (y/3)*3 + x/3 }

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) uint8 { return g[Index(x, y)] }

// CountFilled returns the number of non-empty cells.
func (g *Grid) CountFilled() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// masks returns the per-row, per-column, and per-box occupancy masks for the
// grid's current state.
func (g *Grid) masks() (rows, cols, boxes [Size]uint16) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if v := g[Index(x, y)]; v != 0 {
				rows[y] |= 1 << v
				cols[x] |= 1 << v
				boxes[Box(x, y)] |= 1 << v
			}
		}
	}
	return rows, cols, boxes
}

// ValidSolution reports whether the grid is completely filled with every
// row, column, and box containing each value 1..9 exactly once.
func (g *Grid) ValidSolution() bool {
	rows, cols, boxes := g.masks()
	for i := 0; i < Size; i++ {
		if rows[i] != allValues || cols[i] != allValues || boxes[i] != allValues {
			return false
		}
	}
	return true
}

// String renders the grid as nine lines of digits ('.' for empty cells),
// with box separators after every third column and row:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	------+-------+------
//	...
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		if y%3 == 0 && y != 0 {
			b.WriteString("------+-------+------\n")
		}
		for x := 0; x < Size; x++ {
			if x%3 == 0 && x != 0 {
				b.WriteString("| ")
			}
			if v := g[Index(x, y)]; v == 0 {
				b.WriteString(". ")
			} else {
				b.WriteByte('0' + v)
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Compact returns the grid as a string of 81 digits, '0' for empty cells.
// Parse accepts the format back.
func (g *Grid) Compact() string {
	var b [GridSize]byte
	for i, v := range g {
		b[i] = '0' + v
	}
	return string(b[:])
}

// Parse reads a grid from text. The digits 1-9 are clues, '0' and '.' mark
// empty cells, and every other character (separators, whitespace) is
// ignored. The text must contain exactly 81 cells.
func Parse(s string) (Grid, error) {
	var g Grid
	n := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.':
			v = 0
		default:
			continue
		}
		if n == GridSize {
			return Grid{}, fmt.Errorf("grid has more than %d cells", GridSize)
		}
		g[n] = v
		n++
	}
	if n != GridSize {
		return Grid{}, fmt.Errorf("grid has %d cells, want %d", n, GridSize)
	}
	return g, nil
}
