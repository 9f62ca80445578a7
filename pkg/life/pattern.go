package life

// Pattern is a small 0/1 matrix intended for injection into a grid at a
// caller-supplied origin. It carries no placement of its own and is not part
// of engine state.
type Pattern struct {
	Rows int
	Cols int

	// Cells holds Rows*Cols values in row-major order.
	Cells []uint8
}

// Alive reports the state of the pattern cell at (row, col).
func (p Pattern) Alive(row, col int) bool { return p.Cells[row*p.Cols+col] != 0 }
