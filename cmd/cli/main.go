// Package main is the entry point for the tfc-cost CLI.
package main

import (
	"fmt"
	"os"

	"tfc-cost/cmd/cli/cmd"
	"tfc-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
