package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lifegrid/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.DefaultConfig()

	root := &cobra.Command{
		Use:   "life",
		Short: "Run a two-state cellular automaton headlessly",
		Long: `life simulates a generalized Game of Life on a fixed rectangular grid.

The grid starts from a random fill, a restored snapshot, or an injected
plaintext pattern, advances for a bounded number of generations (or until
interrupted), and can persist the final board as a snapshot artifact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Run(ctx, cfg, log); err != nil {
				log.Error("run failed", "error", err)
				return err
			}
			return nil
		},
	}

	flags := root.Flags()
	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	flags.StringVar(&cfg.Rule, "rule", cfg.Rule, "rule preset name or min_alive,max_alive,min_dead,max_dead")
	flags.Float64Var(&cfg.InitFill, "fill", cfg.InitFill, "probability a cell starts alive")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for the initial grid")
	flags.Uint64Var(&cfg.Generations, "generations", cfg.Generations, "generations to run (0 runs until interrupted)")
	flags.DurationVar(&cfg.Interval, "interval", 0, "pause between drive cycles")
	flags.StringVar(&cfg.PatternFile, "pattern", "", "plaintext pattern file to inject")
	flags.IntVar(&cfg.PatternRow, "pattern-row", 0, "pattern origin row")
	flags.IntVar(&cfg.PatternCol, "pattern-col", 0, "pattern origin column")
	flags.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "directory for snapshot artifacts")
	flags.StringVar(&cfg.LoadName, "load", "", "snapshot name to restore instead of a random grid")
	flags.StringVar(&cfg.SaveName, "save", "", "snapshot name to write when the run finishes")
	return root
}
