package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the pathsim CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pathsim version %s\n", version)
		fmt.Println("Monte Carlo and binomial-lattice price path simulation")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
