package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMeasureInvokesOnce(t *testing.T) {
	calls := 0
	s := Measure("work", func() {
		calls++
		time.Sleep(2 * time.Millisecond)
	})

	if calls != 1 {
		t.Errorf("work invoked %d times, want 1", calls)
	}
	if s.Label != "work" {
		t.Errorf("Label = %q, want %q", s.Label, "work")
	}
	if s.Elapsed < 2*time.Millisecond {
		t.Errorf("Elapsed = %v, want >= 2ms", s.Elapsed)
	}
	if s.HasValue {
		t.Error("HasValue = true for work without a result")
	}
}

func TestMeasureValue(t *testing.T) {
	calls := 0
	v, s := MeasureValue("answer", func() float64 {
		calls++
		return 3e6
	})

	if calls != 1 {
		t.Errorf("work invoked %d times, want 1", calls)
	}
	if v != 3e6 {
		t.Errorf("value = %v, want 3e6", v)
	}
	if !s.HasValue || s.Value != 3e6 {
		t.Errorf("sample value = %v (has=%v), want 3e6", s.Value, s.HasValue)
	}
}

func TestMeasurePropagatesPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()

	Measure("panics", func() { panic("boom") })
	t.Fatal("Measure returned after a panic")
}

func TestSampleString(t *testing.T) {
	tests := []struct {
		sample Sample
		want   string
	}{
		{
			Sample{Label: "computing the sizes", Elapsed: 1500 * time.Microsecond},
			"computing the sizes: 1.500 ms",
		},
		{
			Sample{Label: "reduce, seq", Elapsed: 12345678 * time.Nanosecond, Value: 3e6, HasValue: true},
			"reduce, seq: 12.346 ms, res 3e+06",
		},
		{
			Sample{Label: "find, par", Elapsed: 0, Value: 0.0, HasValue: true},
			"find, par: 0.000 ms, res 0",
		},
	}

	for _, tt := range tests {
		if got := tt.sample.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSampleMillis(t *testing.T) {
	s := Sample{Elapsed: 2500 * time.Microsecond}
	if s.Millis() != 2.5 {
		t.Errorf("Millis() = %v, want 2.5", s.Millis())
	}
}

func TestReporter(t *testing.T) {
	var out, logs bytes.Buffer
	r := NewReporter(&out, zerolog.New(&logs).Level(zerolog.DebugLevel))

	r.Println("Using SEQ Policy")
	r.Time("gathering all the paths", func() {})
	v, s := TimeValue(r, "accumulate", func() float64 { return 1.5 })
	r.Printf("number of files: %d\n", 7)

	if v != 1.5 {
		t.Errorf("TimeValue returned %v, want 1.5", v)
	}
	if s.Label != "accumulate" || !s.HasValue {
		t.Errorf("TimeValue sample = %+v", s)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), out.String())
	}
	if lines[0] != "Using SEQ Policy" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "gathering all the paths: ") || !strings.HasSuffix(lines[1], " ms") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "ms, res 1.5") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[3] != "number of files: 7" {
		t.Errorf("line 3 = %q", lines[3])
	}

	if !strings.Contains(logs.String(), `"event":"sample_measured"`) {
		t.Errorf("expected sample_measured log event, got: %s", logs.String())
	}
}
