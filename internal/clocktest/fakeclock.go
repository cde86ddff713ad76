// Package clocktest provides a fake Clock for tests.
package clocktest

import (
	"sync"
	"time"

	"github.com/lapwatch/lapwatch/internal/clock"
)

// FakeClock is a Clock whose time only moves when told to.
//
// Advance fires due timers synchronously, so tests observe the exact
// interleaving of timer callbacks and time.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

// NewFakeClock returns a FakeClock starting at the Unix epoch.
func NewFakeClock() *FakeClock {
	return NewFakeClockAt(time.Unix(0, 0))
}

// NewFakeClockAt returns a FakeClock starting at t.
func NewFakeClockAt(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the fake current time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc registers f to fire when the clock is advanced past d from now.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due timers in order.
//
// Callbacks run on the caller's goroutine with the clock set to their
// fire time. A callback may register new timers; those fire too if they
// fall within the advance window.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		t := c.nextDueLocked(target)
		if t == nil {
			break
		}
		if c.now.Before(t.at) {
			c.now = t.at
		}
		t.fired = true
		f := t.f
		c.mu.Unlock()
		f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// nextDueLocked returns the earliest live timer due at or before target,
// preferring registration order on equal fire times.
func (c *FakeClock) nextDueLocked(target time.Time) *fakeTimer {
	var due *fakeTimer
	for _, t := range c.timers {
		if t.fired || t.stopped || t.at.After(target) {
			continue
		}
		if due == nil || t.at.Before(due.at) {
			due = t
		}
	}
	return due
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Time
	f       func()
	fired   bool
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
