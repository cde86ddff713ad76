// Package lapledger records laps and derives per-lap statistics.
package lapledger

import "time"

// Lap is one recorded interval.
type Lap struct {
	// Split is the lap's own duration.
	Split time.Duration

	// Total is the stopwatch reading at the moment the lap was recorded.
	Total time.Duration
}

// Ledger accumulates laps in recording order.
//
// It is pure bookkeeping over elapsed readings handed to it; the caller
// gates recording on stopwatch state. Not safe for concurrent use.
type Ledger struct {
	laps []Lap

	// lapStart is the stopwatch reading at which the lap in progress
	// began.
	lapStart time.Duration
}

func New() *Ledger {
	return &Ledger{}
}

// Record closes the lap in progress at the given total elapsed reading
// and starts the next one.
//
// Totals are non-decreasing across recorded laps because readings are.
func (l *Ledger) Record(total time.Duration) Lap {
	lap := Lap{Split: total - l.lapStart, Total: total}
	l.laps = append(l.laps, lap)
	l.lapStart = total
	return lap
}

// Clear discards recorded laps without touching the stopwatch.
//
// The lap in progress restarts at the given reading, so a lap recorded
// later measures only time after the clear.
func (l *Ledger) Clear(total time.Duration) {
	l.laps = nil
	l.lapStart = total
}

// Reset discards everything for a fresh session.
func (l *Ledger) Reset() {
	l.laps = nil
	l.lapStart = 0
}

// Restore adopts laps saved by a previous session.
// The lap in progress starts where the last recorded lap ended.
func (l *Ledger) Restore(laps []Lap) {
	l.laps = append([]Lap(nil), laps...)
	if n := len(l.laps); n > 0 {
		l.lapStart = l.laps[n-1].Total
	} else {
		l.lapStart = 0
	}
}

// Laps returns a copy of the recorded laps, oldest first.
func (l *Ledger) Laps() []Lap {
	return append([]Lap(nil), l.laps...)
}

// Len returns the number of recorded laps.
func (l *Ledger) Len() int {
	return len(l.laps)
}

// CurrentLap reports how long the lap in progress has been open as of
// the given total elapsed reading.
func (l *Ledger) CurrentLap(total time.Duration) time.Duration {
	return total - l.lapStart
}
