package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice a worker is given. Inputs shorter than
// two chunks run on the calling goroutine even in parallel modes.
const minChunk = 1024

// searchBlock is how many elements IndexFunc scans between checks of the
// shared best index.
const searchBlock = 4096

// Workers returns the number of workers parallel modes fan out to.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indexes in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Split divides [0, n) into at most parts contiguous, non-empty ranges whose
// lengths differ by at most one. It returns nil for n <= 0.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	ranges := make([]Range, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := range ranges {
		hi := lo + size
		if i < rem {
			hi++
		}
		ranges[i] = Range{Lo: lo, Hi: hi}
		lo = hi
	}
	return ranges
}

// partitions returns the ranges a mode uses for an input of length n.
func partitions(mode Mode, n int) []Range {
	if !mode.IsParallel() || n < 2*minChunk {
		return Split(n, 1)
	}
	parts := Workers()
	if maxParts := n / minChunk; parts > maxParts {
		parts = maxParts
	}
	return Split(n, parts)
}

// MapReduce folds items into a single value. mapChunk reduces one contiguous
// chunk and combine merges two partial results; together with identity they
// must form an associative reduction for the modes to agree.
//
// Partial results are combined in chunk order, so only the grouping (not the
// order) differs between modes.
func MapReduce[T, R any](mode Mode, items []T, identity R, mapChunk func([]T) R, combine func(R, R) R) R {
	ranges := partitions(mode, len(items))
	switch len(ranges) {
	case 0:
		return identity
	case 1:
		return combine(identity, mapChunk(items))
	}

	partials := make([]R, len(ranges))
	var g errgroup.Group
	for i, r := range ranges {
		g.Go(func() error {
			partials[i] = mapChunk(items[r.Lo:r.Hi])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	acc := identity
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc
}

// IndexFunc returns the index of the first item satisfying pred, or -1.
// Parallel modes stop scanning a chunk once a match at a lower index is known.
func IndexFunc[T any](mode Mode, items []T, pred func(T) bool) int {
	n := len(items)
	ranges := partitions(mode, n)
	if len(ranges) <= 1 {
		for i, v := range items {
			if pred(v) {
				return i
			}
		}
		return -1
	}

	var best atomic.Int64
	best.Store(int64(n))

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			for lo := r.Lo; lo < r.Hi; lo += searchBlock {
				if best.Load() < int64(lo) {
					return nil
				}
				hi := min(lo+searchBlock, r.Hi)
				for i := lo; i < hi; i++ {
					if pred(items[i]) {
						storeMin(&best, int64(i))
						return nil
					}
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if idx := best.Load(); idx < int64(n) {
		return int(idx)
	}
	return -1
}

func storeMin(v *atomic.Int64, candidate int64) {
	for {
		cur := v.Load()
		if candidate >= cur || v.CompareAndSwap(cur, candidate) {
			return
		}
	}
}
