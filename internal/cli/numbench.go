package cli

import (
	"io"
	"time"

	"github.com/eunmann/parbench/pkg/hostinfo"
	"github.com/eunmann/parbench/pkg/logging"
	"github.com/eunmann/parbench/pkg/memdiag"
	"github.com/eunmann/parbench/pkg/numeric"
	"github.com/eunmann/parbench/pkg/parallel"
	"github.com/eunmann/parbench/pkg/timing"
)

// NumBenchOptions configures RunNumBench.
type NumBenchOptions struct {
	// Length overrides the buffer length. Zero uses numeric.DefaultLength.
	Length int
	// MemDebug logs heap statistics around the buffer allocation.
	MemDebug bool
}

type numericCase struct {
	label string
	run   func(numeric.Buffer) float64
}

func reduceCase(mode parallel.Mode) numericCase {
	return numericCase{
		label: "reduce, " + mode.String(),
		run:   func(b numeric.Buffer) float64 { return numeric.Reduce(mode, b, 0) },
	}
}

func findCase(mode parallel.Mode) numericCase {
	return numericCase{
		label: "find, " + mode.String(),
		run: func(b numeric.Buffer) float64 {
			return numeric.FoundValue(numeric.Find(mode, b, numeric.AbsentTarget))
		},
	}
}

// numericCases returns the benchmark sequence. The first case warms caches
// and the page tables of the freshly allocated buffer.
func numericCases() []numericCase {
	warmUp := reduceCase(parallel.Sequential)
	warmUp.label = "warm up"

	return []numericCase{
		warmUp,
		{
			label: "accumulate",
			run:   func(b numeric.Buffer) float64 { return numeric.Accumulate(b, 0) },
		},
		reduceCase(parallel.Sequential),
		reduceCase(parallel.Parallel),
		reduceCase(parallel.ParallelVectorized),
		findCase(parallel.Sequential),
		findCase(parallel.Parallel),
	}
}

// RunNumBench builds the numeric buffer once and times every case against
// it, one line per case.
func RunNumBench(stdout io.Writer, opts NumBenchOptions) error {
	n := opts.Length
	if n <= 0 {
		n = numeric.DefaultLength
	}

	log := logging.WithPhase("numbench")
	logHost(log)
	probe := memdiag.NewProbe(opts.MemDebug, log)

	before := probe.Snapshot()
	buf := numeric.NewBuffer(n, numeric.DefaultFill)
	probe.Delta("buffer_allocated", before)

	simd := hostinfo.DetectSIMD()
	log.Debug().
		Int("length", n).
		Float64("fill", numeric.DefaultFill).
		Int("workers", parallel.Workers()).
		Int("float64_lanes", simd.Float64Lanes).
		Bool("mem_debug", probe.Enabled()).
		Msg("workload ready")

	r := timing.NewReporter(stdout, log)
	cases := numericCases()
	var total time.Duration
	for _, c := range cases {
		_, s := timing.TimeValue(r, c.label, func() float64 { return c.run(buf) })
		total += s.Elapsed
	}

	probe.LogNow("benchmarks_complete")
	logging.PhaseComplete(log, "numbench", total).
		Int("cases", len(cases)).
		Float64("fill", numeric.DefaultFill).
		Str("simd", simd.Name).
		Bytes("buffer_bytes", uint64(n)*8).
		Log("benchmarks complete")
	return nil
}
