// Package timefmt renders elapsed durations as clock-face text.
package timefmt

import (
	"fmt"
	"time"
)

// Parts is the clock-face decomposition of an elapsed duration.
//
// Fields are truncated, never rounded, so text built from Parts never
// runs ahead of the stopwatch reading it came from.
type Parts struct {
	Hours   int // unbounded, grows past 99
	Minutes int // 0-59
	Seconds int // 0-59
	Centis  int // 0-99
}

// Split decomposes d into whole hours, minutes, seconds and
// centiseconds. Negative durations are treated as zero.
func Split(d time.Duration) Parts {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return Parts{
		Hours:   int(ms / 3_600_000),
		Minutes: int(ms / 60_000 % 60),
		Seconds: int(ms / 1000 % 60),
		Centis:  int(ms % 1000 / 10),
	}
}

// String renders "HH:MM:SS.CC" with every field zero-padded to two
// digits. The hour field widens as needed.
func (p Parts) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%02d", p.Hours, p.Minutes, p.Seconds, p.Centis)
}

// Format is shorthand for Split(d).String().
func Format(d time.Duration) string {
	return Split(d).String()
}

// Compact renders d dropping leading zero fields: "SS.CC" under a
// minute, "MM:SS.CC" under an hour, the full form otherwise.
func Compact(d time.Duration) string {
	p := Split(d)
	switch {
	case p.Hours > 0:
		return p.String()
	case p.Minutes > 0:
		return fmt.Sprintf("%02d:%02d.%02d", p.Minutes, p.Seconds, p.Centis)
	default:
		return fmt.Sprintf("%02d.%02d", p.Seconds, p.Centis)
	}
}

// FormatDelta renders a signed difference compactly, always with an
// explicit sign: "+01.50", "-00.20".
func FormatDelta(d time.Duration) string {
	if d < 0 {
		return "-" + Compact(-d)
	}
	return "+" + Compact(d)
}
