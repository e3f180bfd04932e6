package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pathsim/config"
	"github.com/rustyeddy/pathsim/lattice"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Build a recombining binomial lattice from a config file",
	Long: `Build the binomial price lattice for the configured horizon and
print its upper-left corner. Unreachable cells (more down-moves than
steps taken) print as '-'.

Example:
  pathsim tree -f examples/configs/basic.yaml --depth 6`,
	RunE: runTree,
}

var (
	treeConfigPath string
	treeDepth      int
)

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringVarP(&treeConfigPath, "file", "f", "", "path to config file (YAML or JSON) (required)")
	treeCmd.Flags().IntVar(&treeDepth, "depth", 8, "number of time steps to print")
	treeCmd.MarkFlagRequired("file")
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(treeConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := lattice.Build(*cfg)
	if err != nil {
		return fmt.Errorf("build lattice: %w", err)
	}

	u, d := lattice.UpDown(*cfg)
	fmt.Printf("Lattice: %d steps, u=%.6f, d=%.6f (S0=%.2f, sigma=%.4f, T=%.2f)\n\n",
		cfg.Steps, u, d, cfg.S0, cfg.Sigma, cfg.Horizon)

	depth := treeDepth
	if depth > cfg.Steps {
		depth = cfg.Steps
	}

	fmt.Printf("%6s", "down\\t")
	for t := 0; t <= depth; t++ {
		fmt.Printf(" %9d", t)
	}
	fmt.Println()

	for j := 0; j <= depth; j++ {
		fmt.Printf("%6d", j)
		for t := 0; t <= depth; t++ {
			if lattice.Reachable(j, t) {
				fmt.Printf(" %9.4f", m.At(j, t))
			} else {
				fmt.Printf(" %9s", "-")
			}
		}
		fmt.Println()
	}

	return nil
}
