// Package app assembles the engine, controller and stores into a headless run.
package app

import (
	"context"
	"log/slog"
	"time"

	"lifegrid/pkg/control"
	"lifegrid/pkg/life"
	"lifegrid/pkg/pattern"
	"lifegrid/pkg/snapshot"
)

// Config describes one headless run.
type Config struct {
	Rows int
	Cols int

	// Rule is a preset name or a "min_alive,max_alive,min_dead,max_dead"
	// quadruple.
	Rule string

	InitFill float64
	Seed     int64

	// Generations bounds the run; zero runs until the context is cancelled.
	Generations uint64

	// Interval paces drive cycles; zero runs as fast as possible.
	Interval time.Duration

	PatternFile string
	PatternRow  int
	PatternCol  int

	StateDir string
	LoadName string
	SaveName string
}

// DefaultConfig mirrors the engine defaults with persistence disabled.
func DefaultConfig() Config {
	base := life.DefaultConfig()
	return Config{
		Rows:        base.Rows,
		Cols:        base.Cols,
		Rule:        "life",
		InitFill:    base.InitFill,
		Seed:        base.Seed,
		Generations: 100,
		StateDir:    "snapshots",
	}
}

func (c Config) rule() (life.Rule, error) {
	if r, ok := life.Preset(c.Rule); ok {
		return r, nil
	}
	return life.ParseRule(c.Rule)
}

// Run executes one headless simulation per cfg: build the engine (from a
// snapshot when requested), inject the optional pattern, drive the controller
// for the configured number of generations, persist the result.
func Run(ctx context.Context, cfg Config, log *slog.Logger) error {
	rule, err := cfg.rule()
	if err != nil {
		return err
	}
	store := snapshot.NewStore(cfg.StateDir)

	var engine *life.Engine
	if cfg.LoadName != "" {
		engine, err = store.Restore(cfg.LoadName, rule)
		if err != nil {
			return err
		}
		log.Info("restored snapshot",
			"name", cfg.LoadName, "rows", engine.Rows(), "cols", engine.Cols())
	} else {
		engine, err = life.New(life.Config{
			Rows:     cfg.Rows,
			Cols:     cfg.Cols,
			Rule:     rule,
			InitFill: cfg.InitFill,
			Seed:     cfg.Seed,
		})
		if err != nil {
			return err
		}
	}

	if cfg.PatternFile != "" {
		p, err := pattern.DecodeFile(cfg.PatternFile)
		if err != nil {
			return err
		}
		if err := engine.ApplyPattern(p, cfg.PatternRow, cfg.PatternCol); err != nil {
			return err
		}
		log.Info("applied pattern",
			"file", cfg.PatternFile, "rows", p.Rows, "cols", p.Cols,
			"origin_row", cfg.PatternRow, "origin_col", cfg.PatternCol)
	}

	every := progressEvery(cfg.Generations)
	engine.SetObserver(func(iteration uint64) {
		if iteration%every == 0 {
			log.Info("generation complete",
				"iteration", iteration, "population", population(engine.Cells()))
		}
	})

	ctrl := control.NewController(engine)
	ctrl.SetRunning(true)
	ctrl.SetInterval(cfg.Interval)

	start := time.Now()
	if cfg.Generations == 0 {
		// Open-ended run, paced by the controller until the driver is told
		// to stop.
		if err := ctrl.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		for g := uint64(0); g < cfg.Generations && ctx.Err() == nil; g++ {
			if err := ctrl.Tick(); err != nil {
				return err
			}
			if cfg.Interval > 0 {
				time.Sleep(cfg.Interval)
			}
		}
	}
	log.Info("run finished",
		"iterations", engine.Iteration(),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"population", population(engine.Cells()))

	if cfg.SaveName != "" {
		if err := store.Save(cfg.SaveName, engine); err != nil {
			return err
		}
		log.Info("saved snapshot", "name", cfg.SaveName, "path", store.Path(cfg.SaveName))
	}
	return nil
}

func population(cells []uint8) int {
	total := 0
	for _, v := range cells {
		if v != 0 {
			total++
		}
	}
	return total
}

func progressEvery(generations uint64) uint64 {
	if generations == 0 {
		return 100
	}
	step := generations / 10
	if step == 0 {
		step = 1
	}
	return step
}
