// Package numeric implements the in-memory reduction and search workloads
// used by numbench.
package numeric

import (
	"github.com/eunmann/parbench/pkg/parallel"
)

// Workload defaults.
const (
	// DefaultLength is the number of values in the benchmark buffer.
	DefaultLength = 6_000_000

	// DefaultFill is the value every element is initialized to.
	DefaultFill = 0.5

	// AbsentTarget is the search target. It is never stored in a buffer
	// built with DefaultFill.
	AbsentTarget = 0.6
)

// Buffer is a read-only sequence of float64 values.
type Buffer []float64

// NewBuffer allocates a buffer of n values, each set to fill.
func NewBuffer(n int, fill float64) Buffer {
	b := make(Buffer, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

// NewDefaultBuffer returns the standard benchmark workload.
func NewDefaultBuffer() Buffer {
	return NewBuffer(DefaultLength, DefaultFill)
}

// Accumulate folds xs with addition starting at init, one element at a time
// on the calling goroutine.
func Accumulate(xs []float64, init float64) float64 {
	acc := init
	for _, x := range xs {
		acc += x
	}
	return acc
}

// Reduce sums xs starting at init under the given execution mode.
//
// Parallel modes group the additions differently from Sequential, so the
// result can differ in its least significant bits.
func Reduce(mode parallel.Mode, xs []float64, init float64) float64 {
	kernel := sumScalar
	if mode.IsVectorized() {
		kernel = sumLanes
	}
	return parallel.MapReduce(mode, xs, init, kernel, addFloat)
}

// Find returns the index of the first element equal to target, or -1.
func Find(mode parallel.Mode, xs []float64, target float64) int {
	return parallel.IndexFunc(mode, xs, func(v float64) bool { return v == target })
}

// FoundValue maps a Find result to the reported value: 1 when found, 0 when not.
func FoundValue(idx int) float64 {
	if idx < 0 {
		return 0
	}
	return 1
}

func addFloat(a, b float64) float64 { return a + b }

func sumScalar(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// sumLanes keeps eight independent accumulators so consecutive additions do
// not depend on each other.
func sumLanes(xs []float64) float64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float64
	i := 0
	for ; i+8 <= len(xs); i += 8 {
		v := xs[i : i+8 : i+8]
		s0 += v[0]
		s1 += v[1]
		s2 += v[2]
		s3 += v[3]
		s4 += v[4]
		s5 += v[5]
		s6 += v[6]
		s7 += v[7]
	}
	for ; i < len(xs); i++ {
		s0 += xs[i]
	}
	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}
