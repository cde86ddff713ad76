// Package timer implements drift-free elapsed time accounting.
package timer

import (
	"time"

	"github.com/lapwatch/lapwatch/internal/clock"
)

// State is the lifecycle phase of a Timer.
type State int

const (
	// Idle is the initial state: nothing accumulated, not measuring.
	Idle State = iota

	// Running means time is being accumulated.
	Running

	// Paused means the timer holds a reading but is not accumulating.
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Timer tracks elapsed time across start and pause cycles.
//
// The total is only ever extended by differences between two clock
// readings, never by counting ticks, so it does not drift no matter how
// irregularly it is sampled.
//
// Transitions that do not apply in the current state do nothing. Timer
// is not safe for concurrent use; callers serialize access.
type Timer struct {
	clock clock.Clock

	// startedAt is the clock reading when the open segment began.
	// Meaningful only while running.
	startedAt time.Time

	// accumulated is the time banked by completed segments.
	accumulated time.Duration

	state State
}

// New creates a timer with an optional starting offset.
//
// A zero offset yields an Idle timer. A positive offset yields a Paused
// timer, as when resuming a previous session.
func New(clk clock.Clock, offset time.Duration) *Timer {
	t := &Timer{
		clock:       clk,
		accumulated: offset,
	}
	if offset > 0 {
		t.state = Paused
	}
	return t
}

// Start begins or resumes measuring.
// If the timer is already running, it does nothing.
func (t *Timer) Start() {
	if t.state == Running {
		return
	}
	t.startedAt = t.clock.Now()
	t.state = Running
}

// Pause banks the open segment into the accumulated total.
// If the timer is not running, it does nothing.
func (t *Timer) Pause() {
	if t.state != Running {
		return
	}
	t.accumulated += t.clock.Now().Sub(t.startedAt)
	t.state = Paused
}

// Reset returns the timer to Idle with a zero reading.
// Valid in any state.
func (t *Timer) Reset() {
	t.accumulated = 0
	t.startedAt = time.Time{}
	t.state = Idle
}

// Elapsed returns the total measured time.
// While running it includes the open segment, so consecutive readings
// are non-decreasing.
func (t *Timer) Elapsed() time.Duration {
	if t.state == Running {
		return t.accumulated + t.clock.Now().Sub(t.startedAt)
	}
	return t.accumulated
}

// State returns the current lifecycle phase.
func (t *Timer) State() State {
	return t.state
}

// Running reports whether the timer is accumulating time.
func (t *Timer) Running() bool {
	return t.state == Running
}
