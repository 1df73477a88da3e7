// Package hostinfo describes the machine a benchmark runs on: CPU and
// worker counts, physical memory, and the widest SIMD extension available.
package hostinfo

import (
	"runtime"

	"github.com/eunmann/parbench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// FallbackMemoryBytes (4 GiB) is reported when physical memory cannot be
// detected on this platform.
const FallbackMemoryBytes uint64 = 4 * humanfmt.GiB

// Info is a snapshot of the host.
type Info struct {
	GOOS   string
	GOARCH string

	NumCPU int
	// Workers is the number of workers parallel execution modes use.
	Workers int

	MemoryBytes uint64
	// MemoryReliable is false when MemoryBytes is the fallback value.
	MemoryReliable bool

	SIMD SIMD
}

// Detect probes the host.
func Detect() Info {
	info := Info{
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		NumCPU:  runtime.NumCPU(),
		Workers: runtime.GOMAXPROCS(0),
		SIMD:    DetectSIMD(),
	}

	mem, ok := physicalMemory()
	if !ok || mem == 0 {
		info.MemoryBytes = FallbackMemoryBytes
	} else {
		info.MemoryBytes = mem
		info.MemoryReliable = true
	}
	return info
}

// MarshalZerologObject lets Info be logged as a nested object.
func (i Info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", i.GOOS).
		Str("arch", i.GOARCH).
		Int("cpus", i.NumCPU).
		Int("workers", i.Workers).
		Uint64("memory_bytes", i.MemoryBytes).
		Str("memory_h", humanfmt.BytesUint64(i.MemoryBytes)).
		Bool("memory_reliable", i.MemoryReliable).
		Str("simd", i.SIMD.Name).
		Int("float64_lanes", i.SIMD.Float64Lanes)
}
