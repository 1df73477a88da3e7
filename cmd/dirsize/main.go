// Command dirsize times enumerating a directory tree and summing the sizes
// of its regular files, sequentially or in parallel.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/eunmann/parbench/internal/cli"
	"github.com/eunmann/parbench/pkg/logging"
)

func main() {
	logging.Init(logging.ConfigFromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.RunDirSize(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
