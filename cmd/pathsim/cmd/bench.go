package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pathsim/bench"
	"github.com/rustyeddy/pathsim/config"
	"github.com/rustyeddy/pathsim/journal"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the execution strategies against one config",
	Long: `Run every execution strategy for the chosen kernel a number of
rounds and print a timing table. Timings can be journaled to CSV files or
a SQLite database for later comparison.

Examples:
  pathsim bench -f examples/configs/basic.yaml --rounds 5
  pathsim bench -f examples/configs/basic.yaml --kernel lattice --db bench.db`,
	RunE: runBench,
}

var (
	benchConfigPath string
	benchKernel     string
	benchRounds     int
	benchCSVPrefix  string
	benchDBPath     string
)

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVarP(&benchConfigPath, "file", "f", "", "path to config file (YAML or JSON) (required)")
	benchCmd.Flags().StringVar(&benchKernel, "kernel", "mc", "kernel to benchmark: mc or lattice")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 3, "rounds per strategy")
	benchCmd.Flags().StringVar(&benchCSVPrefix, "csv", "", "journal timings to <prefix>_rounds.csv and <prefix>_runs.csv")
	benchCmd.Flags().StringVar(&benchDBPath, "db", "", "journal timings to a SQLite database")
	benchCmd.MarkFlagRequired("file")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(benchConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var j journal.Journal
	switch {
	case benchCSVPrefix != "" && benchDBPath != "":
		return fmt.Errorf("choose one of --csv and --db")
	case benchCSVPrefix != "":
		j, err = journal.NewCSV(benchCSVPrefix+"_rounds.csv", benchCSVPrefix+"_runs.csv")
	case benchDBPath != "":
		j, err = journal.NewSQLite(benchDBPath)
	}
	if err != nil {
		return fmt.Errorf("create journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	runner := &bench.Runner{
		Config:  *cfg,
		Kernel:  bench.Kernel(benchKernel),
		Options: bench.Options{Rounds: benchRounds},
	}

	results, err := runner.Run(cmd.Context(), j)
	if err != nil {
		return err
	}

	fmt.Printf("Benchmark: kernel=%s steps=%d paths=%d rounds=%d\n\n",
		benchKernel, cfg.Steps, cfg.Paths, benchRounds)
	fmt.Printf("%-12s %12s %12s %16s\n", "strategy", "best", "mean", "checksum")
	fmt.Println(strings.Repeat("-", 56))
	for _, r := range results {
		fmt.Printf("%-12s %12s %12s %16.4f\n", r.Strategy, r.Best, r.Mean, r.Checksum)
	}

	if benchCSVPrefix != "" {
		fmt.Printf("\nTimings saved to:\n  - %s_rounds.csv\n  - %s_runs.csv\n", benchCSVPrefix, benchCSVPrefix)
	} else if benchDBPath != "" {
		fmt.Printf("\nTimings saved to: %s\n", benchDBPath)
	}

	return nil
}
