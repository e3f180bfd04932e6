// Package lattice builds recombining binomial price trees. A build
// produces an (M+1) x (M+1) matrix where row j, column t holds the price
// after t steps of which j were down-moves:
//
//	S[j,t] = S0 * u^(t-j) * d^j,  u = exp(sigma*sqrt(dt)),  d = 1/u
//
// Because u*d = 1 the tree recombines: any ordering of the same up/down
// moves lands on the same node, so (M+1)^2 cells cover all 2^M move
// sequences. Cells below the diagonal (j > t) are unreachable and are set
// to zero by every strategy; use Reachable to distinguish structural
// zeros from prices.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rustyeddy/pathsim/config"
)

// ErrNotFinite reports that the up-factor exponentiation overflowed for
// the configured sigma and step count.
var ErrNotFinite = errors.New("lattice produced non-finite price")

// Reachable reports whether node (down, step) can be reached from the
// root, i.e. whether the cell holds a price rather than a structural zero.
func Reachable(down, step int) bool {
	return down >= 0 && step >= down
}

// UpDown returns the multiplicative move factors for cfg. With sigma = 0
// both are exactly 1 and the lattice is flat at S0.
func UpDown(cfg config.Simulation) (u, d float64) {
	u = math.Exp(cfg.Sigma * math.Sqrt(cfg.Dt()))
	return u, 1 / u
}

// Build validates cfg and constructs the tree with the configured
// strategy. The returned matrix is owned by the caller.
func Build(cfg config.Simulation) (*mat.Dense, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var m *mat.Dense
	switch cfg.Strategy {
	case config.Elementwise:
		m = buildElementwise(cfg)
	case config.Vectorized:
		m = buildVectorized(cfg)
	case config.Fast:
		m = buildFast(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", config.ErrInvalid, cfg.Strategy)
	}

	if j, t, ok := firstNonFinite(m); !ok {
		return nil, fmt.Errorf("%w: cell (%d,%d)", ErrNotFinite, j, t)
	}
	return m, nil
}

// buildElementwise grows the tree column by column: each step extends the
// previous column's reachable range by u and adds one new bottom node by d.
func buildElementwise(cfg config.Simulation) *mat.Dense {
	u, d := UpDown(cfg)

	m := mat.NewDense(cfg.Steps+1, cfg.Steps+1, nil)
	m.Set(0, 0, cfg.S0)
	for t := 1; t <= cfg.Steps; t++ {
		for j := 0; j < t; j++ {
			m.Set(j, t, m.At(j, t-1)*u)
		}
		m.Set(t, t, m.At(t-1, t-1)*d)
	}
	return m
}

// buildVectorized evaluates the closed form per cell from a net-exponent
// grid: t - 2j net up-moves means S[j,t] = S0 * exp(sigma*sqrt(dt)*(t-2j)).
// Unlike the recurrence it never chains multiplications, so reachable
// cells can differ from the other strategies in the last few ulps.
func buildVectorized(cfg config.Simulation) *mat.Dense {
	vol := cfg.Sigma * math.Sqrt(cfg.Dt())

	m := mat.NewDense(cfg.Steps+1, cfg.Steps+1, nil)
	for j := 0; j <= cfg.Steps; j++ {
		row := m.RawRowView(j)
		for t := j; t <= cfg.Steps; t++ {
			row[t] = cfg.S0 * math.Exp(vol*float64(t-2*j))
		}
	}
	return m
}

// buildFast is the elementwise recurrence over flat storage. It writes
// the same multiplication chains in the same order, so its output matches
// buildElementwise bit for bit.
func buildFast(cfg config.Simulation) *mat.Dense {
	u, d := UpDown(cfg)

	n := cfg.Steps + 1
	m := mat.NewDense(n, n, nil)
	data := m.RawMatrix().Data

	data[0] = cfg.S0
	for t := 1; t < n; t++ {
		for j := 0; j < t; j++ {
			data[j*n+t] = data[j*n+t-1] * u
		}
		data[t*n+t] = data[(t-1)*n+t-1] * d
	}
	return m
}

func firstNonFinite(m *mat.Dense) (row, col int, ok bool) {
	raw := m.RawMatrix()
	for k, v := range raw.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k / raw.Cols, k % raw.Cols, false
		}
	}
	return 0, 0, true
}
