package benchutil

import (
	"os"
	"testing"
)

// SkipIfNoLongBench skips the benchmark if PARBENCH_LONG_BENCH is not set.
// Use this to gate benchmarks that build large trees on disk.
func SkipIfNoLongBench(b *testing.B) {
	if os.Getenv("PARBENCH_LONG_BENCH") == "" {
		b.Skip("set PARBENCH_LONG_BENCH=1 to run scaling benchmark")
	}
}
