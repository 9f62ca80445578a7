package life

// grid stores a rows×cols matrix of 0/1 cell values in row-major order.
type grid struct {
	rows, cols int
	data       []uint8
}

func newGrid(rows, cols int) *grid {
	return &grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// index returns the flat slice index for (row, col).
func (g *grid) index(row, col int) int { return row*g.cols + col }

// inBounds reports whether (row, col) addresses a cell. Edges are clamped;
// there is no wrapping.
func (g *grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// clone copies the backing cells.
func (g *grid) clone() []uint8 {
	return append([]uint8(nil), g.data...)
}
