package memdiag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var sink []byte

func TestRead(t *testing.T) {
	s := Read()
	if s.HeapAlloc == 0 || s.Sys == 0 {
		t.Errorf("expected non-zero heap stats, got %+v", s)
	}
}

func TestProbeDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProbe(false, zerolog.New(&buf))

	p.LogNow("test")
	p.Delta("test", Read())

	if p.Snapshot() != (Stats{}) {
		t.Error("disabled probe returned stats")
	}
	if p.Enabled() {
		t.Error("Enabled() = true")
	}
	if buf.Len() != 0 {
		t.Errorf("disabled probe wrote output: %s", buf.String())
	}
}

func TestProbeDelta(t *testing.T) {
	var buf bytes.Buffer
	p := NewProbe(true, zerolog.New(&buf))

	before := p.Snapshot()
	sink = make([]byte, 8<<20)
	p.Delta("alloc", before)
	p.LogNow("after")

	output := buf.String()
	for _, want := range []string{`"event":"memory_delta"`, `"reason":"alloc"`, `"event":"memory_stats"`, `"heap_delta_bytes":`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}
