// Package timing measures a single invocation of a unit of work and reports
// the elapsed wall-clock time.
package timing

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/eunmann/parbench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// Sample is the result of one timed invocation.
type Sample struct {
	Label   string
	Elapsed time.Duration

	// Value is the work's result when HasValue is set.
	Value    any
	HasValue bool
}

// Millis returns the elapsed time in fractional milliseconds.
func (s Sample) Millis() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// String renders "<label>: <ms> ms" and, if present, ", res <value>".
func (s Sample) String() string {
	line := s.Label + ": " + strconv.FormatFloat(s.Millis(), 'f', 3, 64) + " ms"
	if s.HasValue {
		line += fmt.Sprintf(", res %v", s.Value)
	}
	return line
}

// Measure invokes fn exactly once and returns its timing.
// time.Now carries a monotonic reading, so wall-clock adjustments during the
// call do not affect Elapsed. Panics in fn are not recovered.
func Measure(label string, fn func()) Sample {
	start := time.Now()
	fn()
	return Sample{Label: label, Elapsed: time.Since(start)}
}

// MeasureValue invokes fn exactly once and returns its result and timing.
func MeasureValue[T any](label string, fn func() T) (T, Sample) {
	start := time.Now()
	v := fn()
	elapsed := time.Since(start)
	return v, Sample{Label: label, Elapsed: elapsed, Value: v, HasValue: true}
}

// Reporter prints samples as lines to an output stream and mirrors each one
// as a debug log event.
type Reporter struct {
	out io.Writer
	log zerolog.Logger
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, log zerolog.Logger) *Reporter {
	return &Reporter{out: out, log: log}
}

// Report prints the sample.
func (r *Reporter) Report(s Sample) {
	fmt.Fprintln(r.out, s.String())

	r.log.Debug().
		Str("event", "sample_measured").
		Str("label", s.Label).
		Float64("duration_ms", s.Millis()).
		Str("duration_h", humanfmt.Duration(s.Elapsed)).
		Msg("sample measured")
}

// Println writes a free-form line in program order with the samples.
func (r *Reporter) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// Printf writes a formatted line in program order with the samples.
func (r *Reporter) Printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

// Time measures fn and reports the sample.
func (r *Reporter) Time(label string, fn func()) Sample {
	s := Measure(label, fn)
	r.Report(s)
	return s
}

// TimeValue measures fn, reports the sample, and returns fn's result along
// with the sample.
func TimeValue[T any](r *Reporter, label string, fn func() T) (T, Sample) {
	v, s := MeasureValue(label, fn)
	r.Report(s)
	return v, s
}
