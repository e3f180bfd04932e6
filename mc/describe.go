package mc

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the terminal-price statistics the CLI reports next to the
// analytic forward value.
type Summary struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Paths int
}

// Describe reduces a set of terminal prices to summary statistics.
// Returns the zero Summary for an empty slice.
func Describe(final []float64) Summary {
	if len(final) == 0 {
		return Summary{}
	}
	std := 0.0
	if len(final) > 1 {
		std = stat.StdDev(final, nil)
	}
	return Summary{
		Mean:  stat.Mean(final, nil),
		Std:   std,
		Min:   floats.Min(final),
		Max:   floats.Max(final),
		Paths: len(final),
	}
}
