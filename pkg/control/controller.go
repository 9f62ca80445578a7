// Package control mediates between an external drive cycle and a grid engine.
package control

import (
	"context"
	"time"
)

// Engine is the surface the controller needs from a grid engine.
type Engine interface {
	Step()
	ToggleCell(row, col int) error
}

// DefaultInterval paces Run when no interval has been set.
const DefaultInterval = 200 * time.Millisecond

// Controller is a two-state machine deciding, once per drive cycle, whether
// to advance a generation or apply the pending cell edit. At most one of the
// two happens per tick. It is not safe for concurrent use; the driver must
// not interleave calls.
type Controller struct {
	engine   Engine
	interval time.Duration
	running  bool

	pending    [2]int
	hasPending bool
}

// NewController wraps an engine in a stopped controller.
func NewController(e Engine) *Controller {
	return &Controller{engine: e, interval: DefaultInterval}
}

// Running reports whether ticks advance generations.
func (c *Controller) Running() bool { return c.running }

// SetRunning switches between the Running and Stopped states.
func (c *Controller) SetRunning(running bool) { c.running = running }

// Interval returns the pacing of Run's drive cycle.
func (c *Controller) Interval() time.Duration { return c.interval }

// SetInterval adjusts the pacing of Run's drive cycle. Non-positive values
// are ignored.
func (c *Controller) SetInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// SelectCell records (row, col) as the pending edit, replacing any previous
// one. Selections are rejected while Running: edits and generation
// advancement are mutually exclusive per cycle.
func (c *Controller) SelectCell(row, col int) bool {
	if c.running {
		return false
	}
	c.pending = [2]int{row, col}
	c.hasPending = true
	return true
}

// Tick performs one drive cycle: a generation step while Running, otherwise
// the pending edit if one exists, otherwise nothing. The pending slot is
// cleared even when the toggle fails; the error is the caller's to handle and
// the engine is untouched by the failed edit.
func (c *Controller) Tick() error {
	if c.running {
		c.engine.Step()
		return nil
	}
	if c.hasPending {
		row, col := c.pending[0], c.pending[1]
		c.hasPending = false
		return c.engine.ToggleCell(row, col)
	}
	return nil
}

// Run drives Tick at the configured interval until ctx is done, then returns
// the context's error. A tick error stops the loop early.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.Tick(); err != nil {
				return err
			}
		}
	}
}
