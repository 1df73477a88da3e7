// Package cli implements the dirsize and numbench command-line tools.
//
// Each Run function writes its report to the given writer and returns an
// error for main to turn into an exit status. Diagnostics go through the
// process logger from pkg/logging.
package cli

import (
	"errors"

	"github.com/eunmann/parbench/pkg/hostinfo"
	"github.com/rs/zerolog"
)

// ErrUsage is returned after a usage line has been printed.
var ErrUsage = errors.New("usage")

func logHost(log zerolog.Logger) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}
	log.Debug().Object("host", hostinfo.Detect()).Msg("host detected")
}
