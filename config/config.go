// Package config holds the scalar parameters shared by both simulation
// kernels. A Simulation value is immutable once built and is passed
// explicitly into every call; nothing in the library reads process state.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure so callers can test
// with errors.Is regardless of which field was rejected.
var ErrInvalid = errors.New("invalid simulation config")

// Strategy selects the execution variant used by a kernel. All variants
// compute the same recurrence and agree numerically; the split exists for
// benchmarking, not correctness.
type Strategy string

const (
	// Elementwise iterates cell by cell.
	Elementwise Strategy = "elementwise"
	// Vectorized updates one whole time-step row at a time.
	Vectorized Strategy = "vectorized"
	// Fast runs the elementwise recurrence over flat storage with
	// precomputed constants.
	Fast Strategy = "fast"
)

// Strategies lists the variants in benchmark order.
var Strategies = []Strategy{Elementwise, Vectorized, Fast}

// Simulation contains the parameters for a single path simulation or
// lattice build.
type Simulation struct {
	S0       float64  `json:"s0" yaml:"s0"`           // initial price
	Horizon  float64  `json:"horizon" yaml:"horizon"` // T, in years
	Rate     float64  `json:"rate" yaml:"rate"`       // risk-free rate r
	Sigma    float64  `json:"sigma" yaml:"sigma"`     // volatility
	Steps    int      `json:"steps" yaml:"steps"`     // time steps M
	Paths    int      `json:"paths" yaml:"paths"`     // path count I (Monte Carlo only)
	Seed     uint64   `json:"seed" yaml:"seed"`       // RNG seed, fixed for reproducible runs
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Workers  int      `json:"workers,omitempty" yaml:"workers,omitempty"` // parallel batches, performance knob only
}

// Dt returns the time-step width T / M.
func (c Simulation) Dt() float64 {
	return c.Horizon / float64(c.Steps)
}

// Validate checks the fields both kernels share. The Monte Carlo path
// count is checked separately by the mc package since the lattice never
// reads it.
func (c Simulation) Validate() error {
	if c.S0 <= 0 {
		return fmt.Errorf("%w: s0 must be positive, got %g", ErrInvalid, c.S0)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %g", ErrInvalid, c.Horizon)
	}
	if c.Sigma < 0 {
		return fmt.Errorf("%w: sigma must be non-negative, got %g", ErrInvalid, c.Sigma)
	}
	if c.Steps < 1 {
		return fmt.Errorf("%w: steps must be >= 1, got %d", ErrInvalid, c.Steps)
	}
	switch c.Strategy {
	case Elementwise, Vectorized, Fast:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalid, c.Strategy)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	return nil
}

// LoadFromFile loads a Simulation from a file (YAML or JSON based on
// content, YAML tried first) and validates it.
func LoadFromFile(path string) (*Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToFile writes the Simulation to path, as YAML for .yaml/.yml and
// JSON otherwise.
func (c *Simulation) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Default returns the reference configuration used throughout the tests:
// a one-year horizon discretized into 50 steps with 10,000 paths.
func Default() *Simulation {
	return &Simulation{
		S0:       36,
		Horizon:  1.0,
		Rate:     0.06,
		Sigma:    0.2,
		Steps:    50,
		Paths:    10000,
		Seed:     42,
		Strategy: Vectorized,
	}
}
