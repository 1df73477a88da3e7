// Command numbench times a fixed float64 reduction and search under
// sequential, parallel, and vectorized-parallel execution modes.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/parbench/internal/cli"
	"github.com/eunmann/parbench/pkg/logging"
)

func main() {
	cfg := logging.ConfigFromEnv()
	logging.Init(cfg)

	if err := cli.RunNumBench(os.Stdout, cli.NumBenchOptions{MemDebug: cfg.MemDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
