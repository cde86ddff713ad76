// Package clock abstracts the time source used by the stopwatch
// so that tests can substitute a controllable implementation.
package clock

import "time"

// Clock provides the current time and timer scheduling.
type Clock interface {
	// Now returns the current time.
	//
	// Readings carry Go's monotonic component, so differences between
	// them are strictly non-decreasing and unaffected by wall-clock
	// adjustments.
	Now() time.Time

	// AfterFunc schedules f to run in its own goroutine after d elapses.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc invocation.
type Timer interface {
	// Stop cancels the invocation. It reports false if the timer
	// already fired or was stopped.
	Stop() bool
}

// System is the Clock backed by the time package.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
