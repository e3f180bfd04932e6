// Package mc simulates geometric-Brownian-motion price paths by Monte
// Carlo. A simulation produces an (M+1) x I matrix where row t holds the
// price of every path at time step t; row 0 is the initial price. Three
// execution strategies compute the identical discretized recurrence
//
//	S[t,i] = S[t-1,i] * exp((r - sigma^2/2)*dt + sigma*sqrt(dt)*Z[t-1,i])
//
// and, given the same draws, produce the same matrix. The strategies are
// selected through config.Simulation.Strategy; they exist so their
// wall-clock behavior can be compared, not because any of them differs in
// output.
package mc

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rustyeddy/pathsim/config"
)

// ErrNotFinite reports that exponentiation overflowed. It indicates a
// configuration problem (dt*sigma^2 numerically unstable), so the result
// is rejected rather than clamped.
var ErrNotFinite = errors.New("simulation produced non-finite price")

// Draws fills a Steps x Paths matrix with independent standard-normal
// samples from src. One draw is consumed per (time step, path) cell, in
// row-major order, which is what makes runs reproducible for a fixed seed.
func Draws(cfg config.Simulation, src rand.Source) *mat.Dense {
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	z := mat.NewDense(cfg.Steps, cfg.Paths, nil)
	data := z.RawMatrix().Data
	for i := range data {
		data[i] = norm.Rand()
	}
	return z
}

// Simulate validates cfg, generates draws from cfg.Seed and runs the
// configured strategy. The returned matrix is owned by the caller.
func Simulate(cfg config.Simulation) (*mat.Dense, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	z := Draws(cfg, rand.NewSource(cfg.Seed))
	return SimulateWithDraws(cfg, z)
}

// SimulateWithDraws runs the configured strategy against caller-supplied
// draws. z must be Steps x Paths. Injecting the draws is what the
// strategy-equivalence tests rely on.
func SimulateWithDraws(cfg config.Simulation, z *mat.Dense) (*mat.Dense, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if r, c := z.Dims(); r != cfg.Steps || c != cfg.Paths {
		return nil, fmt.Errorf("%w: draws are %dx%d, want %dx%d",
			config.ErrInvalid, r, c, cfg.Steps, cfg.Paths)
	}

	var m *mat.Dense
	switch cfg.Strategy {
	case config.Elementwise:
		m = simulateElementwise(cfg, z)
	case config.Vectorized:
		m = simulateVectorized(cfg, z)
	case config.Fast:
		m = simulateFast(cfg, z)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", config.ErrInvalid, cfg.Strategy)
	}

	if t, i, ok := firstNonFinite(m); !ok {
		return nil, fmt.Errorf("%w: cell (%d,%d)", ErrNotFinite, t, i)
	}
	return m, nil
}

func validate(cfg config.Simulation) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Paths < 1 {
		return fmt.Errorf("%w: paths must be >= 1, got %d", config.ErrInvalid, cfg.Paths)
	}
	return nil
}

// simulateElementwise computes every cell independently with nested loops
// over time steps and paths.
func simulateElementwise(cfg config.Simulation, z *mat.Dense) *mat.Dense {
	dt := cfg.Dt()
	drift := (cfg.Rate - 0.5*cfg.Sigma*cfg.Sigma) * dt
	vol := cfg.Sigma * math.Sqrt(dt)

	m := mat.NewDense(cfg.Steps+1, cfg.Paths, nil)
	for i := 0; i < cfg.Paths; i++ {
		m.Set(0, i, cfg.S0)
	}
	for t := 1; t <= cfg.Steps; t++ {
		for i := 0; i < cfg.Paths; i++ {
			m.Set(t, i, m.At(t-1, i)*math.Exp(drift+vol*z.At(t-1, i)))
		}
	}
	return m
}

// simulateVectorized advances one whole time-step row at a time, working
// directly on the row slices.
func simulateVectorized(cfg config.Simulation, z *mat.Dense) *mat.Dense {
	dt := cfg.Dt()
	drift := (cfg.Rate - 0.5*cfg.Sigma*cfg.Sigma) * dt
	vol := cfg.Sigma * math.Sqrt(dt)

	m := mat.NewDense(cfg.Steps+1, cfg.Paths, nil)
	row := m.RawRowView(0)
	for i := range row {
		row[i] = cfg.S0
	}
	for t := 1; t <= cfg.Steps; t++ {
		prev := m.RawRowView(t - 1)
		row := m.RawRowView(t)
		zrow := z.RawRowView(t - 1)
		for i, p := range prev {
			row[i] = p * math.Exp(drift+vol*zrow[i])
		}
	}
	return m
}

// simulateFast is the elementwise recurrence over the flat backing array,
// with the hot loop free of bounds recomputation and method calls.
func simulateFast(cfg config.Simulation, z *mat.Dense) *mat.Dense {
	dt := cfg.Dt()
	drift := (cfg.Rate - 0.5*cfg.Sigma*cfg.Sigma) * dt
	vol := cfg.Sigma * math.Sqrt(dt)

	m := mat.NewDense(cfg.Steps+1, cfg.Paths, nil)
	data := m.RawMatrix().Data
	zdata := z.RawMatrix().Data
	n := cfg.Paths

	for i := 0; i < n; i++ {
		data[i] = cfg.S0
	}
	for k := n; k < len(data); k++ {
		data[k] = data[k-n] * math.Exp(drift+vol*zdata[k-n])
	}
	return m
}

// Final returns a copy of the terminal prices, one per path.
func Final(m *mat.Dense) []float64 {
	r, _ := m.Dims()
	return mat.Row(nil, r-1, m)
}

// firstNonFinite reports the first NaN or Inf cell, if any. ok is true
// when the whole matrix is finite.
func firstNonFinite(m *mat.Dense) (row, col int, ok bool) {
	raw := m.RawMatrix()
	for k, v := range raw.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k / raw.Cols, k % raw.Cols, false
		}
	}
	return 0, 0, true
}
