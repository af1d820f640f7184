package exactcover

// Matrix is a dense boolean incidence table for an exact cover instance.
// Rows represent candidate choices, columns represent constraints that must
// each be satisfied exactly once.
type Matrix struct {
	rows  int
	cols  int
	cells []bool
	inUse int
}

// NewMatrix creates an all-false matrix with the given dimensions.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of candidate rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of constraint columns.
func (m *Matrix) Cols() int { return m.cols }

// InUse returns the number of cells currently set.
func (m *Matrix) InUse() int { return m.inUse }

// Set marks the cell at (row, col). Setting a cell twice is a no-op.
func (m *Matrix) Set(row, col int) {
	i := row*m.cols + col
	if !m.cells[i] {
		m.cells[i] = true
		m.inUse++
	}
}

// At reports whether the cell at (row, col) is set.
func (m *Matrix) At(row, col int) bool {
	return m.cells[row*m.cols+col]
}
