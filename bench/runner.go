// Package bench times the kernel execution strategies against one
// configuration and journals the measurements. It is the library's
// rendition of the repeated loop-vs-vectorized-vs-fast timing
// comparisons the kernels were written to demonstrate.
package bench

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/rustyeddy/pathsim/config"
	"github.com/rustyeddy/pathsim/journal"
	"github.com/rustyeddy/pathsim/lattice"
	"github.com/rustyeddy/pathsim/mc"
	"github.com/rustyeddy/pathsim/pkg/id"
)

// Kernel names the simulation being benchmarked.
type Kernel string

const (
	MonteCarlo Kernel = "mc"
	Lattice    Kernel = "lattice"
)

// Options controls how the runner behaves.
type Options struct {
	// Rounds per strategy; defaults to 3.
	Rounds int
	// Strategies to time; defaults to all three.
	Strategies []config.Strategy
}

// Result is the aggregate for one strategy.
type Result struct {
	Strategy config.Strategy
	Rounds   int
	Best     time.Duration
	Mean     time.Duration
	// Checksum is the sum over the result matrix's terminal row (Monte
	// Carlo) or full grid (lattice). Strategies run from the same seed, so
	// matching checksums confirm the rounds computed the same thing.
	Checksum float64
}

// Runner drives the timing loop for one kernel and config.
type Runner struct {
	Config  config.Simulation
	Kernel  Kernel
	Options Options
}

// Run times every requested strategy for the configured number of rounds.
// If j is not nil, each round and each per-strategy summary is recorded
// under a fresh ULID run ID. The context is checked between rounds so a
// long benchmark can be abandoned; a finished round is never discarded.
func (r *Runner) Run(ctx context.Context, j journal.Journal) ([]Result, error) {
	rounds := r.Options.Rounds
	if rounds <= 0 {
		rounds = 3
	}
	strategies := r.Options.Strategies
	if len(strategies) == 0 {
		strategies = config.Strategies
	}
	if r.Kernel != MonteCarlo && r.Kernel != Lattice {
		return nil, fmt.Errorf("bench: unknown kernel %q", r.Kernel)
	}

	runID := id.New()
	results := make([]Result, 0, len(strategies))

	for _, strat := range strategies {
		cfg := r.Config
		cfg.Strategy = strat

		res := Result{Strategy: strat, Rounds: rounds}
		var total time.Duration

		for round := 1; round <= rounds; round++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			start := time.Now()
			m, err := r.execute(cfg)
			elapsed := time.Since(start)
			if err != nil {
				return nil, fmt.Errorf("bench %s/%s round %d: %w", r.Kernel, strat, round, err)
			}

			sum := r.checksum(m)
			res.Checksum = sum
			total += elapsed
			if res.Best == 0 || elapsed < res.Best {
				res.Best = elapsed
			}

			if j != nil {
				err := j.RecordRound(journal.RoundRecord{
					RunID:    runID,
					Kernel:   string(r.Kernel),
					Strategy: string(strat),
					Round:    round,
					Elapsed:  elapsed,
					Checksum: sum,
					Time:     time.Now(),
				})
				if err != nil {
					return nil, fmt.Errorf("record round: %w", err)
				}
			}
		}

		res.Mean = total / time.Duration(rounds)
		results = append(results, res)

		if j != nil {
			err := j.RecordRun(journal.RunSummary{
				RunID:    runID,
				Kernel:   string(r.Kernel),
				Strategy: string(strat),
				Rounds:   rounds,
				Best:     res.Best,
				Mean:     res.Mean,
				Steps:    r.Config.Steps,
				Paths:    r.Config.Paths,
				Seed:     r.Config.Seed,
				Time:     time.Now(),
			})
			if err != nil {
				return nil, fmt.Errorf("record run: %w", err)
			}
		}
	}

	return results, nil
}

func (r *Runner) execute(cfg config.Simulation) (*mat.Dense, error) {
	if r.Kernel == Lattice {
		return lattice.Build(cfg)
	}
	if cfg.Workers > 1 {
		return mc.SimulateBatches(cfg)
	}
	return mc.Simulate(cfg)
}

func (r *Runner) checksum(m *mat.Dense) float64 {
	if r.Kernel == Lattice {
		return floats.Sum(m.RawMatrix().Data)
	}
	return floats.Sum(mc.Final(m))
}
