package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/eunmann/parbench/internal/logctx"
	"github.com/eunmann/parbench/pkg/dirsize"
	"github.com/eunmann/parbench/pkg/logging"
	"github.com/eunmann/parbench/pkg/parallel"
	"github.com/eunmann/parbench/pkg/timing"
	"github.com/rs/zerolog"
)

const dirSizeUsage = "Usage: dirsize <path> <parallel:1|0>"

// RunDirSize walks args[0] and sums the sizes of its regular files, using
// the execution mode selected by args[1].
//
// Fewer than two arguments print the usage line and return ErrUsage without
// touching the file system. The mode token never fails to parse; see
// parallel.ParseMode. A traversal failure is returned before any size is
// computed.
func RunDirSize(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) < 2 {
		fmt.Fprintln(stdout, dirSizeUsage)
		return ErrUsage
	}
	mode := parallel.ParseMode(args[1])
	root := args[0]

	log := logging.WithPhase("dirsize").With().
		Str("root", root).
		Str("mode", mode.String()).
		Logger()
	logHost(log)

	r := timing.NewReporter(stdout, log)
	r.Println("Using", policyName(mode), "Policy")

	var entries []dirsize.Entry
	var walkErr error
	walkCtx := logctx.WithLogger(ctx, log)
	walked := timing.Measure("gathering all the paths", func() {
		entries, walkErr = dirsize.Walk(walkCtx, root)
	})
	if walkErr != nil {
		return walkErr
	}
	r.Report(walked)
	r.Printf("number of files: %d\n", len(entries))

	var total uint64
	sized := r.Time("computing the sizes", func() {
		total = dirsize.TotalSize(mode, entries)
	})

	if log.GetLevel() <= zerolog.DebugLevel {
		// Re-stats every entry, so only when someone is listening.
		sum := dirsize.Summarize(mode, entries)
		logging.PhaseComplete(log, "size", sized.Elapsed).
			Int("workers", parallel.Workers()).
			Count("entries", int64(sum.Entries)).
			Count("regular_files", int64(sum.RegularFiles)).
			Bytes("total_bytes", total).
			Throughput(total).
			LogDebug("sizes computed")
	}

	r.Printf("size of all %d regular files: %d kbytes\n", len(entries), total/1024)
	return nil
}

func policyName(mode parallel.Mode) string {
	if mode.IsParallel() {
		return "PAR"
	}
	return "SEQ"
}
