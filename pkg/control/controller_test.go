package control

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeEngine records the calls a controller makes.
type fakeEngine struct {
	steps     int
	toggles   [][2]int
	toggleErr error
}

func (f *fakeEngine) Step() { f.steps++ }

func (f *fakeEngine) ToggleCell(row, col int) error {
	f.toggles = append(f.toggles, [2]int{row, col})
	return f.toggleErr
}

func TestTickWhileRunningStepsOnce(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)
	ctrl.SetRunning(true)

	require.NoError(t, ctrl.Tick())
	require.Equal(t, 1, engine.steps)
	require.Empty(t, engine.toggles)
}

func TestTickAppliesPendingEditOnce(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)

	require.True(t, ctrl.SelectCell(3, 4))
	require.NoError(t, ctrl.Tick())
	require.Equal(t, [][2]int{{3, 4}}, engine.toggles)
	require.Zero(t, engine.steps)

	// The pending slot is consumed; the next tick is a no-op.
	require.NoError(t, ctrl.Tick())
	require.Len(t, engine.toggles, 1)
	require.Zero(t, engine.steps)
}

func TestSelectCellOverwritesPending(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)

	require.True(t, ctrl.SelectCell(1, 1))
	require.True(t, ctrl.SelectCell(2, 2))
	require.NoError(t, ctrl.Tick())
	require.Equal(t, [][2]int{{2, 2}}, engine.toggles)
}

func TestSelectCellRejectedWhileRunning(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)
	ctrl.SetRunning(true)

	require.False(t, ctrl.SelectCell(1, 1))

	ctrl.SetRunning(false)
	require.NoError(t, ctrl.Tick())
	require.Empty(t, engine.toggles)
}

func TestTickIdleIsNoOp(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)

	require.NoError(t, ctrl.Tick())
	require.Zero(t, engine.steps)
	require.Empty(t, engine.toggles)
}

func TestTickPropagatesToggleErrorAndClearsPending(t *testing.T) {
	boom := errors.New("toggle failed")
	engine := &fakeEngine{toggleErr: boom}
	ctrl := NewController(engine)

	require.True(t, ctrl.SelectCell(9, 9))
	require.ErrorIs(t, ctrl.Tick(), boom)

	engine.toggleErr = nil
	require.NoError(t, ctrl.Tick())
	require.Len(t, engine.toggles, 1)
}

func TestRunningEditsMutuallyExclusivePerTick(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)

	require.True(t, ctrl.SelectCell(0, 0))
	ctrl.SetRunning(true)

	// While running, the pending edit must not be consumed.
	require.NoError(t, ctrl.Tick())
	require.Equal(t, 1, engine.steps)
	require.Empty(t, engine.toggles)

	ctrl.SetRunning(false)
	require.NoError(t, ctrl.Tick())
	require.Equal(t, 1, engine.steps)
	require.Equal(t, [][2]int{{0, 0}}, engine.toggles)
}

func TestSetIntervalIgnoresNonPositive(t *testing.T) {
	ctrl := NewController(&fakeEngine{})
	require.Equal(t, DefaultInterval, ctrl.Interval())

	ctrl.SetInterval(50 * time.Millisecond)
	require.Equal(t, 50*time.Millisecond, ctrl.Interval())

	ctrl.SetInterval(0)
	ctrl.SetInterval(-time.Second)
	require.Equal(t, 50*time.Millisecond, ctrl.Interval())
}

func TestRunStopsWhenContextDone(t *testing.T) {
	engine := &fakeEngine{}
	ctrl := NewController(engine)
	ctrl.SetRunning(true)
	ctrl.SetInterval(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := ctrl.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Greater(t, engine.steps, 0)
}

func TestRunStopsOnTickError(t *testing.T) {
	boom := errors.New("toggle failed")
	engine := &fakeEngine{toggleErr: boom}
	ctrl := NewController(engine)
	ctrl.SetInterval(time.Millisecond)
	require.True(t, ctrl.SelectCell(5, 5))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.ErrorIs(t, ctrl.Run(ctx), boom)
}
