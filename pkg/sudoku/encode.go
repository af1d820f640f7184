package sudoku

import "github.com/matzehuels/gensudoku/pkg/exactcover"

// Exact cover dimensions: one candidate row per (value, x, y) placement and
// four constraint families of 81 columns each.
const (
	matrixRows = GridSize * Size // 729
	matrixCols = 4 * GridSize    // 324
)

// Constraint column bases, one family per sudoku rule.
const (
	colCell = 0 * GridSize // cell (x, y) is filled
	colRow  = 1 * GridSize // row y contains value v
	colCol  = 2 * GridSize // column x contains value v
	colBox  = 3 * GridSize // box contains value v
)

// placementRow encodes placing value v (1..9) at (x, y) as a matrix row
// index.
func placementRow(x, y int, v uint8) int {
	return GridSize*y + Size*x + int(v) - 1
}

// decodePlacement is the inverse of placementRow.
func decodePlacement(row int) (x, y int, v uint8) {
	x = (row / Size) % Size
	y = (row / Size) / Size
	v = uint8(row%Size) + 1
	return x, y, v
}

// encode builds the exact cover instance for the grid's current state. Only
// empty cells produce candidate rows, and only for values not already
// present in the cell's row, column, or box; this pruning keeps the matrix
// sparse enough for the search to stay fast. Each candidate row activates
// exactly four columns.
func encode(g *Grid) *exactcover.Matrix {
	m := exactcover.NewMatrix(matrixRows, matrixCols)
	rows, cols, boxes := g.masks()

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if g[Index(x, y)] != 0 {
				continue
			}
			box := Box(x, y)
			used := rows[y] | cols[x] | boxes[box]
			for v := uint8(1); v <= Size; v++ {
				if used&(1<<v) != 0 {
					continue
				}
				row := placementRow(x, y, v)
				m.Set(row, colCell+Index(x, y))
				m.Set(row, colRow+Size*y+int(v)-1)
				m.Set(row, colCol+Size*x+int(v)-1)
				m.Set(row, colBox+Size*box+int(v)-1)
			}
		}
	}
	return m
}
