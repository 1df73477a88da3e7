package benchutil

// Shared constants for benchmarks across packages.

// BenchmarkSeed is the default seed for reproducible benchmark data generation.
const BenchmarkSeed = 42

// Standard file counts for quick runs.
var BenchmarkSizes = []int{100, 1000, 5000}

// ScalingSizes are larger file counts for scaling runs.
// Used with PARBENCH_LONG_BENCH=1 environment variable.
var ScalingSizes = []int{10000, 50000, 100000}

// TreeShapes are the standard directory layouts for benchmarking:
//   - deep_narrow: a few long chains of nested directories
//   - wide_shallow: one level with many directories
//   - balanced: fanout 8 at every level up to MaxDepth
var TreeShapes = []string{
	"deep_narrow",
	"wide_shallow",
	"balanced",
}
