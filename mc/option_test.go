package mc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/pathsim/analytic"
	"github.com/rustyeddy/pathsim/config"
)

func TestOptionPayoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opt      Option
		terminal float64
		want     float64
	}{
		{name: "call_in_the_money", opt: Option{Strike: 40}, terminal: 45, want: 5},
		{name: "call_out_of_the_money", opt: Option{Strike: 40}, terminal: 35, want: 0},
		{name: "call_at_the_money", opt: Option{Strike: 40}, terminal: 40, want: 0},
		{name: "put_in_the_money", opt: Option{Strike: 40, Put: true}, terminal: 35, want: 5},
		{name: "put_out_of_the_money", opt: Option{Strike: 40, Put: true}, terminal: 45, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.opt.Payoff(tt.terminal))
		})
	}
}

func TestEstimateOptionZeroSigma(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Sigma = 0
	cfg.Paths = 10

	// Deterministic growth: every path ends at S0*exp(r*T), so the
	// discounted call value is the intrinsic value of the forward.
	est, err := EstimateOption(cfg, Option{Strike: 30})
	assert.NoError(t, err)

	want := math.Max(cfg.S0-30*math.Exp(-cfg.Rate*cfg.Horizon), 0)
	assert.InEpsilon(t, want, est.Value, 1e-9)
	assert.InDelta(t, 0, est.StdErr, 1e-9)
}

func TestEstimateOptionNearBlackScholes(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Paths = 20000

	tests := []struct {
		name string
		opt  Option
		want float64
	}{
		{name: "call_k40", opt: Option{Strike: 40}, want: analytic.CallPrice(cfg, 40)},
		{name: "put_k40", opt: Option{Strike: 40, Put: true}, want: analytic.PutPrice(cfg, 40)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			est, err := EstimateOption(cfg, tt.opt)
			assert.NoError(t, err)
			assert.Equal(t, cfg.Paths, est.Paths)
			assert.Greater(t, est.StdErr, 0.0)

			// 20k paths put the standard error around 0.03; 0.25 is a wide
			// deterministic bound for the fixed seed.
			assert.InDelta(t, tt.want, est.Value, 0.25)
		})
	}
}

func TestEstimateOptionInvalidStrike(t *testing.T) {
	t.Parallel()

	_, err := EstimateOption(testConfig(), Option{Strike: 0})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}
