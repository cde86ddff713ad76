// Package tickloop drives a repeating callback on a fixed interval.
package tickloop

import (
	"sync"
	"time"

	"github.com/lapwatch/lapwatch/internal/clock"
)

// DefaultInterval is one frame at roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

// Loop runs a callback once per interval until stopped.
//
// At most one chain of callbacks is live: Start replaces any previous
// chain, and after Stop no callback of that chain is scheduled again.
// Each tick carries the generation it was scheduled under and re-checks
// it before running, so a tick queued just before Stop is suppressed.
//
// A tick that is already executing when Stop is called may still finish
// concurrently. Callers reacting to their own state transitions guard
// the callback on that state.
type Loop struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration

	// gen identifies the live chain; bumping it orphans all scheduled
	// ticks.
	gen     uint64
	pending clock.Timer
	running bool
}

// New returns a stopped Loop. A non-positive interval means
// DefaultInterval.
func New(clk clock.Clock, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{clock: clk, interval: interval}
}

// Interval returns the tick cadence.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start begins a new chain, cancelling any previous one. fn runs on the
// clock's timer goroutine once per interval until Stop.
func (l *Loop) Start(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
	l.running = true
	l.scheduleLocked(l.gen, fn)
}

// Stop cancels the chain. Ticks not yet running never will.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
}

// Running reports whether a chain is live.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) cancelLocked() {
	l.gen++
	l.running = false
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
}

func (l *Loop) scheduleLocked(gen uint64, fn func()) {
	l.pending = l.clock.AfterFunc(l.interval, func() {
		l.tick(gen, fn)
	})
}

func (l *Loop) tick(gen uint64, fn func()) {
	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	// The callback runs unlocked so it may call back into the Loop.
	fn()

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.scheduleLocked(gen, fn)
}
