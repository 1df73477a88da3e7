// Package humanfmt renders byte counts, durations, rates, and counts for
// diagnostic log fields.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// Binary (IEC) units for bytes.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

type unit struct {
	size   float64
	suffix string
}

var byteUnits = []unit{
	{TiB, "TiB"},
	{GiB, "GiB"},
	{MiB, "MiB"},
	{KiB, "KiB"},
}

// scaled returns v in the largest unit it reaches, or ok=false below 1 KiB.
func scaled(v float64) (float64, string, bool) {
	for _, u := range byteUnits {
		if v >= u.size {
			return v / u.size, u.suffix, true
		}
	}
	return v, "", false
}

// Bytes formats a byte count using IEC binary units, e.g. "1.23 GiB".
func Bytes(b int64) string {
	if b < 0 {
		return fmt.Sprintf("%d B", b)
	}
	if v, suffix, ok := scaled(float64(b)); ok {
		return fmt.Sprintf("%.2f %s", v, suffix)
	}
	return fmt.Sprintf("%d B", b)
}

// BytesUint64 is like Bytes but for uint64.
func BytesUint64(b uint64) string {
	if v, suffix, ok := scaled(float64(b)); ok {
		return fmt.Sprintf("%.2f %s", v, suffix)
	}
	return fmt.Sprintf("%d B", b)
}

// Duration formats d compactly.
// Examples: "1.23s", "45.6ms", "789.0µs", "1m30s", "2h15m".
func Duration(d time.Duration) string {
	if d < 0 {
		return d.String()
	}

	switch {
	case d >= time.Hour:
		h := d / time.Hour
		if m := (d % time.Hour) / time.Minute; m != 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	case d >= time.Minute:
		m := d / time.Minute
		if s := (d % time.Minute) / time.Second; s != 0 {
			return fmt.Sprintf("%dm%ds", m, s)
		}
		return fmt.Sprintf("%dm", m)
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Throughput formats bytes per duration, e.g. "123.40 MiB/s".
func Throughput(bytes int64, d time.Duration) string {
	return ThroughputUint64(uint64(max(bytes, 0)), d)
}

// ThroughputUint64 is like Throughput but for uint64.
func ThroughputUint64(bytes uint64, d time.Duration) string {
	if d <= 0 {
		return "∞"
	}
	perSec := float64(bytes) / d.Seconds()
	if v, suffix, ok := scaled(perSec); ok {
		return fmt.Sprintf("%.2f %s/s", v, suffix)
	}
	return fmt.Sprintf("%.0f B/s", perSec)
}

// Count formats n with a decimal suffix.
// Examples: "1.23M", "456.00K", "789".
func Count(n int64) string {
	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n < 0:
		return strconv.FormatInt(n, 10)
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}
