package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lifegrid/pkg/life"
	"lifegrid/pkg/snapshot"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunSavesSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Rows = 16
	cfg.Cols = 16
	cfg.Generations = 5
	cfg.StateDir = dir
	cfg.SaveName = "final"

	require.NoError(t, Run(context.Background(), cfg, discardLogger()))

	rows, cols, cells, err := snapshot.NewStore(dir).Load("final")
	require.NoError(t, err)
	require.Equal(t, 16, rows)
	require.Equal(t, 16, cols)
	require.Len(t, cells, 16*16)
}

func TestRunRestoresSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	seed, err := life.New(life.Config{Rows: 8, Cols: 8, Rule: life.Conway, InitFill: 0.3, Seed: 5})
	require.NoError(t, err)
	require.NoError(t, store.Save("start", seed))

	cfg := DefaultConfig()
	cfg.Generations = 3
	cfg.StateDir = dir
	cfg.LoadName = "start"
	cfg.SaveName = "end"

	require.NoError(t, Run(context.Background(), cfg, discardLogger()))

	rows, cols, _, err := store.Load("end")
	require.NoError(t, err)
	require.Equal(t, 8, rows)
	require.Equal(t, 8, cols)
}

func TestRunInjectsPattern(t *testing.T) {
	dir := t.TempDir()
	patternPath := filepath.Join(dir, "block.cells")
	require.NoError(t, os.WriteFile(patternPath, []byte("OO\nOO\n"), 0o644))

	cfg := DefaultConfig()
	cfg.Rows = 10
	cfg.Cols = 10
	cfg.InitFill = 0
	cfg.Generations = 4
	cfg.StateDir = dir
	cfg.PatternFile = patternPath
	cfg.PatternRow = 4
	cfg.PatternCol = 4
	cfg.SaveName = "still"

	require.NoError(t, Run(context.Background(), cfg, discardLogger()))

	// A block is a still life: it must survive every generation untouched.
	_, _, cells, err := snapshot.NewStore(dir).Load("still")
	require.NoError(t, err)
	alive := 0
	for _, v := range cells {
		if v != 0 {
			alive++
		}
	}
	require.Equal(t, 4, alive)
	require.EqualValues(t, 1, cells[4*10+4])
	require.EqualValues(t, 1, cells[5*10+5])
}

func TestRunRejectsBadRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "definitely-not-a-rule"
	require.ErrorIs(t, Run(context.Background(), cfg, discardLogger()), life.ErrInvalidParameter)
}

func TestRunRejectsMisplacedPattern(t *testing.T) {
	dir := t.TempDir()
	patternPath := filepath.Join(dir, "row.cells")
	require.NoError(t, os.WriteFile(patternPath, []byte("OOOOO\n"), 0o644))

	cfg := DefaultConfig()
	cfg.Rows = 4
	cfg.Cols = 4
	cfg.StateDir = dir
	cfg.PatternFile = patternPath

	require.ErrorIs(t, Run(context.Background(), cfg, discardLogger()), life.ErrOutOfBounds)
}

func TestRunOpenEndedStopsOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 8
	cfg.Cols = 8
	cfg.Generations = 0
	cfg.Interval = time.Millisecond
	cfg.StateDir = t.TempDir()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, Run(ctx, cfg, discardLogger()))
}
