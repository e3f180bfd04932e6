package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathsim",
	Short: "Monte Carlo and binomial-lattice price path simulation",
	Long: `Pathsim simulates asset price paths under geometric Brownian motion.

It provides tools for:
  - Monte Carlo simulation of price paths with reproducible seeding
  - Recombining binomial lattice construction
  - Discounted European option payoff estimation
  - Benchmarking the elementwise, vectorized, and fast execution strategies
  - Journaling benchmark timings to CSV or SQLite`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
