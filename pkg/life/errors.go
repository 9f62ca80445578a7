package life

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// returned values carry additional context via wrapping.
var (
	// ErrInvalidParameter rejects inconsistent construction arguments.
	ErrInvalidParameter = errors.New("life: invalid parameter")

	// ErrOutOfBounds rejects coordinates or pattern placements outside the grid.
	ErrOutOfBounds = errors.New("life: out of bounds")
)
