package main

import (
	"os"

	"github.com/rustyeddy/pathsim/cmd/pathsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
