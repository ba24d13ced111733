package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/bench"
	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
)

type benchCommand struct {
	Days   int    `long:"days" description:"days to replay; overrides BENCH_DAYS (0 = one per word)"`
	Epoch  string `long:"epoch" description:"first day as YYYY-MM-DD; overrides BENCH_EPOCH"`
	Scorer string `long:"scorer" description:"oracle feedback rule, containment or standard; overrides BENCH_SCORER"`
	Quiet  bool   `long:"quiet" short:"q" description:"no progress bar"`

	app *app
}

func (c *benchCommand) Execute([]string) error {
	return c.run(os.Stdout, os.Stderr)
}

func (c *benchCommand) run(out, progress io.Writer) error {
	o := bench.Options{
		Epoch:    c.app.cfg.Epoch,
		Days:     c.app.cfg.Days,
		Solver:   c.app.cfg.SolverOptions(),
		Scorer:   c.app.cfg.Scorer,
		Progress: progress,
	}
	if c.Days > 0 {
		o.Days = c.Days
	}
	if c.Epoch != "" {
		epoch, err := daily.ParseDateKey(c.Epoch)
		if err != nil {
			return fmt.Errorf("--epoch: %w", err)
		}
		o.Epoch = epoch
	}
	if c.Scorer != "" {
		score, err := game.ParseScorer(c.Scorer)
		if err != nil {
			return fmt.Errorf("--scorer: %w", err)
		}
		o.Scorer = score
	}
	if c.Quiet {
		o.Progress = nil
	}

	start := time.Now()
	r, err := bench.Run(c.app.dict, o)
	if err != nil {
		return err
	}
	log.Info().
		Int("days", r.Days).
		Int("failed", len(r.Failures)).
		Float64("average", r.Average()).
		Dur("elapsed", time.Since(start)).
		Msg("benchmark finished")
	return r.Write(out)
}
