package life

import (
	"fmt"

	"lifegrid/pkg/core"
)

// Engine owns a fixed-size two-state grid and advances it one generation at a
// time under a four-threshold rule. Dimensions and rule are immutable after
// construction. The engine is synchronous and not safe for concurrent use.
type Engine struct {
	rows, cols int
	rule       Rule

	cur *grid
	nxt *grid

	// counts is the reusable live-neighbor accumulator, one entry per cell.
	counts []uint16

	iteration uint64
	observer  func(iteration uint64)
}

// New constructs an engine whose cells start alive independently with
// probability cfg.InitFill, deterministically for a given cfg.Seed.
// The iteration counter starts at zero.
func New(cfg Config) (*Engine, error) {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidParameter, cfg.Rows, cfg.Cols)
	}
	if cfg.InitFill < 0 || cfg.InitFill > 1 {
		return nil, fmt.Errorf("%w: init fill %v outside [0,1]", ErrInvalidParameter, cfg.InitFill)
	}
	if err := cfg.Rule.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rows:   cfg.Rows,
		cols:   cfg.Cols,
		rule:   cfg.Rule,
		cur:    newGrid(cfg.Rows, cfg.Cols),
		nxt:    newGrid(cfg.Rows, cfg.Cols),
		counts: make([]uint16, cfg.Rows*cfg.Cols),
	}
	rng := core.NewRNG(cfg.Seed).Source()
	core.FillBias(rng, e.cur.data, cfg.InitFill)
	return e, nil
}

// NewFromCells constructs an engine around a previously captured cell matrix,
// typically one read back from a snapshot. The matrix is copied and any
// nonzero value is treated as a live cell. The iteration counter starts at
// zero.
func NewFromCells(rows, cols int, rule Rule, cells []uint8) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d must be positive", ErrInvalidParameter, rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells do not fill a %dx%d grid", ErrInvalidParameter, len(cells), rows, cols)
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		rows:   rows,
		cols:   cols,
		rule:   rule,
		cur:    newGrid(rows, cols),
		nxt:    newGrid(rows, cols),
		counts: make([]uint16, rows*cols),
	}
	for i, v := range cells {
		if v != 0 {
			e.cur.data[i] = 1
		}
	}
	return e, nil
}

// Rows returns the fixed row count.
func (e *Engine) Rows() int { return e.rows }

// Cols returns the fixed column count.
func (e *Engine) Cols() int { return e.cols }

// Rule returns the engine's rule.
func (e *Engine) Rule() Rule { return e.rule }

// Iteration returns the number of completed generations.
func (e *Engine) Iteration() uint64 { return e.iteration }

// Cells exposes the current cell matrix in row-major order. The slice is the
// engine's live backing buffer; Step invalidates it.
func (e *Engine) Cells() []uint8 { return e.cur.data }

// CellAt reports whether the cell at (row, col) is alive.
func (e *Engine) CellAt(row, col int) (bool, error) {
	if !e.cur.inBounds(row, col) {
		return false, fmt.Errorf("%w: cell (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, e.rows, e.cols)
	}
	return e.cur.data[e.cur.index(row, col)] != 0, nil
}

// SetObserver installs a hook invoked after each completed Step with the new
// iteration number. A nil observer disables the hook.
func (e *Engine) SetObserver(fn func(iteration uint64)) { e.observer = fn }

// ToggleCell flips the cell at (row, col). The iteration counter is unchanged.
func (e *Engine) ToggleCell(row, col int) error {
	if !e.cur.inBounds(row, col) {
		return fmt.Errorf("%w: cell (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, e.rows, e.cols)
	}
	e.cur.data[e.cur.index(row, col)] ^= 1
	return nil
}

// ApplyPattern overwrites the p.Rows×p.Cols block whose top-left corner sits
// at (row, col), cell-for-cell. The grid is untouched when the block does not
// fit inside it.
func (e *Engine) ApplyPattern(p Pattern, row, col int) error {
	if p.Rows <= 0 || p.Cols <= 0 || len(p.Cells) != p.Rows*p.Cols {
		return fmt.Errorf("%w: pattern cells do not match its %dx%d shape", ErrInvalidParameter, p.Rows, p.Cols)
	}
	if row < 0 || col < 0 || row+p.Rows > e.rows || col+p.Cols > e.cols {
		return fmt.Errorf("%w: %dx%d pattern at (%d,%d) exceeds %dx%d grid", ErrOutOfBounds, p.Rows, p.Cols, row, col, e.rows, e.cols)
	}
	for pr := 0; pr < p.Rows; pr++ {
		dst := e.cur.index(row+pr, col)
		src := pr * p.Cols
		for pc := 0; pc < p.Cols; pc++ {
			v := uint8(0)
			if p.Cells[src+pc] != 0 {
				v = 1
			}
			e.cur.data[dst+pc] = v
		}
	}
	return nil
}

// neighborOffsets are the eight unit displacements around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Step advances the grid by one generation and increments the iteration
// counter. The whole next generation derives from the snapshot the grid held
// on entry.
func (e *Engine) Step() {
	e.accumulateNeighbors()
	rule := e.rule
	cur, nxt := e.cur.data, e.nxt.data
	for i, n := range e.counts {
		c := int(n)
		v := uint8(0)
		if cur[i] != 0 {
			if rule.MinAlive <= c && c <= rule.MaxAlive {
				v = 1
			}
		} else if rule.MinDead <= c && c <= rule.MaxDead {
			v = 1
		}
		nxt[i] = v
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.iteration++
	if e.observer != nil {
		e.observer(e.iteration)
	}
}

// accumulateNeighbors fills e.counts with per-cell live-neighbor totals by
// adding, for each of the eight offsets, the clipped overlap between the grid
// and its shifted copy. Positions past an edge contribute nothing, so edge and
// corner cells see strictly fewer than eight neighbors.
func (e *Engine) accumulateNeighbors() {
	counts := e.counts
	for i := range counts {
		counts[i] = 0
	}
	rows, cols := e.rows, e.cols
	cells := e.cur.data
	for _, off := range neighborOffsets {
		dr, dc := off[0], off[1]
		rowLo, rowHi := max(0, -dr), min(rows, rows-dr)
		colLo, colHi := max(0, -dc), min(cols, cols-dc)
		for r := rowLo; r < rowHi; r++ {
			src := (r+dr)*cols + dc
			dst := r * cols
			for c := colLo; c < colHi; c++ {
				counts[dst+c] += uint16(cells[src+c])
			}
		}
	}
}
