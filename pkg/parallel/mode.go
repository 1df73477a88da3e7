// Package parallel provides execution modes and partitioned fan-out helpers
// for reductions and searches over in-memory slices.
//
// Callers pick a Mode and hand over a slice; the package decides how the
// slice is split across workers. Worker count follows runtime.GOMAXPROCS and
// is not configurable.
package parallel

import (
	"strconv"
	"strings"
)

// Mode selects how an algorithm is scheduled.
type Mode int

const (
	// Sequential runs on the calling goroutine in slice order.
	Sequential Mode = iota
	// Parallel partitions the input across workers.
	Parallel
	// ParallelVectorized partitions the input across workers and lets each
	// worker use a multi-lane kernel.
	ParallelVectorized
)

// String returns the short name used in benchmark labels.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "seq"
	case Parallel:
		return "par"
	case ParallelVectorized:
		return "par_unseq"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// IsParallel reports whether the mode fans out to multiple workers.
func (m Mode) IsParallel() bool {
	return m == Parallel || m == ParallelVectorized
}

// IsVectorized reports whether the mode asks for a multi-lane kernel.
func (m Mode) IsVectorized() bool {
	return m == ParallelVectorized
}

// ParseMode parses a mode from a command-line token. It never fails.
//
// Mode names as returned by String are accepted in any case. Anything else
// is read like C atoi: optional leading whitespace and sign, then the
// longest run of digits. A zero result, including a token with no leading
// digits, is Sequential and any other value is Parallel.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seq", "sequential":
		return Sequential
	case "par", "parallel":
		return Parallel
	case "par_unseq", "vectorized":
		return ParallelVectorized
	}

	if leadingIntNonZero(s) {
		return Parallel
	}
	return Sequential
}

// leadingIntNonZero reports whether the integer prefix of s is non-zero.
// Only the digits matter, so arbitrarily long prefixes cannot overflow.
func leadingIntNonZero(s string) bool {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		if c != '0' {
			return true
		}
	}
	return false
}
