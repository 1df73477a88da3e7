// Package memdiag logs Go heap statistics around large allocations.
//
// Enable with PARBENCH_MEM_DEBUG=1; events are written at debug level.
package memdiag

import (
	"runtime"

	"github.com/eunmann/parbench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// Stats holds memory statistics from runtime.
type Stats struct {
	// HeapAlloc is bytes allocated on heap and still in use.
	HeapAlloc uint64

	// HeapSys is bytes obtained from OS for heap.
	HeapSys uint64

	// TotalAlloc is cumulative bytes allocated (even if freed).
	TotalAlloc uint64

	// Sys is bytes obtained from OS.
	Sys uint64

	// NumGC is the number of completed GC cycles.
	NumGC uint32
}

// Read reads current memory statistics.
func Read() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:  m.HeapAlloc,
		HeapSys:    m.HeapSys,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
	}
}

// Probe logs heap statistics when enabled. A disabled probe does not read
// runtime stats, which would stop the world.
type Probe struct {
	enabled bool
	log     zerolog.Logger
}

// NewProbe creates a probe writing to log.
func NewProbe(enabled bool, log zerolog.Logger) *Probe {
	return &Probe{enabled: enabled, log: log}
}

// Enabled reports whether the probe logs anything.
func (p *Probe) Enabled() bool {
	return p.enabled
}

// Snapshot returns current statistics, or zero Stats when disabled.
func (p *Probe) Snapshot() Stats {
	if !p.enabled {
		return Stats{}
	}
	return Read()
}

// LogNow logs current heap statistics tagged with reason.
func (p *Probe) LogNow(reason string) {
	if !p.enabled {
		return
	}

	s := Read()
	p.log.Debug().
		Str("event", "memory_stats").
		Str("reason", reason).
		Str("heap_alloc", humanfmt.BytesUint64(s.HeapAlloc)).
		Str("heap_sys", humanfmt.BytesUint64(s.HeapSys)).
		Str("total_alloc", humanfmt.BytesUint64(s.TotalAlloc)).
		Str("sys_total", humanfmt.BytesUint64(s.Sys)).
		Uint32("num_gc", s.NumGC).
		Msg("memory stats")
}

// Delta logs how much the heap grew between before and now.
func (p *Probe) Delta(reason string, before Stats) {
	if !p.enabled {
		return
	}

	after := Read()
	grown := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	p.log.Debug().
		Str("event", "memory_delta").
		Str("reason", reason).
		Int64("heap_delta_bytes", grown).
		Str("heap_delta", humanfmt.Bytes(grown)).
		Str("heap_alloc", humanfmt.BytesUint64(after.HeapAlloc)).
		Msg("memory delta")
}
