package bench

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/pathsim/config"
	"github.com/rustyeddy/pathsim/journal"
)

func testConfig() config.Simulation {
	return config.Simulation{
		S0:       36,
		Horizon:  1.0,
		Rate:     0.06,
		Sigma:    0.2,
		Steps:    20,
		Paths:    100,
		Seed:     42,
		Strategy: config.Elementwise,
	}
}

func TestRunnerTimesAllStrategies(t *testing.T) {
	t.Parallel()

	r := &Runner{Config: testConfig(), Kernel: MonteCarlo}

	results, err := r.Run(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, results, len(config.Strategies))

	for i, res := range results {
		assert.Equal(t, config.Strategies[i], res.Strategy)
		assert.Equal(t, 3, res.Rounds)
		assert.Greater(t, res.Best, time.Duration(0))
		assert.GreaterOrEqual(t, res.Mean, res.Best)
	}

	// Strategies share the seed and compute the same recurrence, so the
	// terminal-row checksums must agree.
	assert.InDelta(t, results[0].Checksum, results[1].Checksum, 1e-9)
	assert.InDelta(t, results[0].Checksum, results[2].Checksum, 1e-9)
}

func TestRunnerLatticeKernel(t *testing.T) {
	t.Parallel()

	r := &Runner{
		Config:  testConfig(),
		Kernel:  Lattice,
		Options: Options{Rounds: 2, Strategies: []config.Strategy{config.Elementwise, config.Fast}},
	}

	results, err := r.Run(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	// Elementwise and fast share the multiplication chains exactly.
	assert.Equal(t, results[0].Checksum, results[1].Checksum)
}

func TestRunnerJournalsRounds(t *testing.T) {
	t.Parallel()

	j, err := journal.NewSQLite(filepath.Join(t.TempDir(), "bench.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	r := &Runner{
		Config:  testConfig(),
		Kernel:  MonteCarlo,
		Options: Options{Rounds: 2, Strategies: []config.Strategy{config.Fast}},
	}

	results, err := r.Run(context.Background(), j)
	assert.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRunnerUnknownKernel(t *testing.T) {
	t.Parallel()

	r := &Runner{Config: testConfig(), Kernel: "fourier"}

	_, err := r.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunnerInvalidConfigSurfaces(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Paths = 0

	r := &Runner{Config: cfg, Kernel: MonteCarlo}

	_, err := r.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRunnerCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{Config: testConfig(), Kernel: MonteCarlo}

	_, err := r.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
