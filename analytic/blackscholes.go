// Package analytic provides the closed-form reference values the
// simulations are checked against: the risk-neutral forward price and the
// Black-Scholes European option value.
package analytic

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/rustyeddy/pathsim/config"
)

// Forward returns the risk-neutral expected terminal price S0*exp(r*T).
// The sample mean of simulated terminal prices converges to this value.
func Forward(cfg config.Simulation) float64 {
	return cfg.S0 * math.Exp(cfg.Rate*cfg.Horizon)
}

// CallPrice returns the Black-Scholes value of a European call with the
// given strike under cfg.
func CallPrice(cfg config.Simulation, strike float64) float64 {
	s, k, t, r, sigma := cfg.S0, strike, cfg.Horizon, cfg.Rate, cfg.Sigma

	if sigma == 0 {
		// Deterministic growth: discounted intrinsic value of the forward.
		return math.Max(s-k*math.Exp(-r*t), 0)
	}

	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 := d1 - sigma*math.Sqrt(t)
	return s*distuv.UnitNormal.CDF(d1) - k*math.Exp(-r*t)*distuv.UnitNormal.CDF(d2)
}

// PutPrice returns the Black-Scholes value of a European put, via
// put-call parity with CallPrice.
func PutPrice(cfg config.Simulation, strike float64) float64 {
	return CallPrice(cfg, strike) - cfg.S0 + strike*math.Exp(-cfg.Rate*cfg.Horizon)
}
