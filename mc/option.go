package mc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/rustyeddy/pathsim/config"
)

// Option describes the payoff reduced over the terminal prices. The
// strike is supplied per call; it is not part of the simulation config.
type Option struct {
	Strike float64
	Put    bool
}

// Payoff returns the intrinsic value at terminal price s, floored at zero.
func (o Option) Payoff(s float64) float64 {
	if o.Put {
		return math.Max(o.Strike-s, 0)
	}
	return math.Max(s-o.Strike, 0)
}

// Estimate is a discounted mean-payoff estimate with its Monte Carlo
// standard error.
type Estimate struct {
	Value  float64
	StdErr float64
	Paths  int
}

// EstimateOption simulates cfg and reduces the terminal row to the
// discounted European option value
//
//	exp(-r*T) * mean(max(payoff(S[M,i]), 0))
//
// The standard error is the discounted sample standard deviation of the
// payoffs over sqrt(I).
func EstimateOption(cfg config.Simulation, opt Option) (Estimate, error) {
	if opt.Strike <= 0 {
		return Estimate{}, fmt.Errorf("%w: strike must be positive, got %g", config.ErrInvalid, opt.Strike)
	}

	m, err := SimulateBatches(cfg)
	if err != nil {
		return Estimate{}, err
	}

	payoffs := Final(m)
	for i, s := range payoffs {
		payoffs[i] = opt.Payoff(s)
	}

	disc := math.Exp(-cfg.Rate * cfg.Horizon)
	mean := stat.Mean(payoffs, nil)

	se := 0.0
	if len(payoffs) > 1 {
		se = stat.StdDev(payoffs, nil) / math.Sqrt(float64(len(payoffs)))
	}

	return Estimate{
		Value:  disc * mean,
		StdErr: disc * se,
		Paths:  len(payoffs),
	}, nil
}
