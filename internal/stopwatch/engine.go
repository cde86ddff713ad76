// Package stopwatch implements the timer engine behind the UI.
//
// An Engine owns the timer state machine, the lap ledger and the tick
// scheduler, and serializes all access behind one mutex. Callers drive
// it through commands (Start, Pause, Lap, ...) that never fail: a
// command that does not apply in the current state does nothing.
package stopwatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/lapwatch/lapwatch/internal/clock"
	"github.com/lapwatch/lapwatch/internal/lapledger"
	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/storage"
	"github.com/lapwatch/lapwatch/internal/tickloop"
	"github.com/lapwatch/lapwatch/internal/timer"
)

// Snapshot is a point-in-time reading of the engine.
type Snapshot struct {
	State      timer.State
	Elapsed    time.Duration
	CurrentLap time.Duration
	LapCount   int
}

type Params struct {
	// Clock is the time source. Defaults to the system clock.
	Clock clock.Clock

	// Interval is the delay between scheduler ticks. Defaults to
	// tickloop.DefaultInterval.
	Interval time.Duration

	// Storage persists laps across sessions. May be nil, in which case
	// the engine runs purely in memory.
	Storage storage.Gateway

	// Logger receives storage failures. Defaults to a no-op logger.
	Logger *observability.CoreLogger

	// OnTick is invoked with a fresh Snapshot on every scheduler tick
	// while the timer runs. It runs with the engine's lock held:
	// implementations must return quickly and must not call back into
	// the Engine. May be nil.
	OnTick func(Snapshot)

	// Resume restores the lap history from Storage, starting the timer
	// paused at the last recorded lap total.
	Resume bool
}

// Engine is a drift-free stopwatch with lap tracking.
type Engine struct {
	mu      sync.Mutex
	clock   clock.Clock
	timer   *timer.Timer
	ledger  *lapledger.Ledger
	loop    *tickloop.Loop
	storage storage.Gateway
	logger  *observability.CoreLogger
	onTick  func(Snapshot)
	saves   *saveDebouncer
}

func New(params Params) *Engine {
	clk := params.Clock
	if clk == nil {
		clk = clock.System
	}
	logger := params.Logger
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	e := &Engine{
		clock:   clk,
		ledger:  lapledger.New(),
		loop:    tickloop.New(clk, params.Interval),
		storage: params.Storage,
		logger:  logger,
		onTick:  params.OnTick,
		saves:   newSaveDebouncer(),
	}

	var offset time.Duration
	if params.Storage != nil && params.Resume {
		laps, err := params.Storage.LoadLaps()
		switch {
		case err != nil:
			logger.CaptureError(
				fmt.Errorf("stopwatch: loading saved laps: %w", err))
		case len(laps) > 0:
			e.ledger.Restore(laps)
			offset = laps[len(laps)-1].Total
		}
	}
	e.timer = timer.New(clk, offset)

	return e
}

// Start begins or resumes timing. It does nothing if the timer is
// already running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked()
}

// Pause freezes the elapsed time. It does nothing unless the timer is
// running. No tick is delivered after Pause returns.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

// TogglePause pauses a running timer and starts a stopped one.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer.Running() {
		e.pauseLocked()
	} else {
		e.startLocked()
	}
}

// Lap records a lap at the current elapsed time. It does nothing
// unless the timer is running.
func (e *Engine) Lap() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timer.Running() {
		return
	}
	e.ledger.Record(e.timer.Elapsed())
	e.saves.markDirty()
	e.saves.maybeSave(e.clock.Now(), e.persistLapsLocked)
}

// Reset stops timing and discards the elapsed time and all laps. It
// works from any state. No tick is delivered after Reset returns.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loop.Stop()
	e.timer.Reset()
	e.ledger.Reset()
	e.saves.markDirty()
	e.saves.flush(e.persistLapsLocked)
}

// ClearLaps discards all laps, leaving the timer untouched. The next
// lap measures from the elapsed time at the moment of the clear.
func (e *Engine) ClearLaps() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ledger.Clear(e.timer.Elapsed())
	e.saves.markDirty()
	e.saves.flush(e.persistLapsLocked)
}

// Snapshot returns a point-in-time reading of the engine.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Elapsed returns the accumulated run time.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Elapsed()
}

// Running reports whether the stopwatch is accumulating time.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.Running()
}

// State returns the timer state.
func (e *Engine) State() timer.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer.State()
}

// Laps returns a copy of the recorded laps, oldest first.
func (e *Engine) Laps() []lapledger.Lap {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Laps()
}

// Stats computes fastest/slowest/average statistics over the recorded
// laps.
func (e *Engine) Stats() lapledger.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Stats()
}

// Close stops the scheduler and writes any unsaved laps. The engine
// must not be used afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.loop.Stop()
	e.timer.Pause()
	e.saves.flush(e.persistLapsLocked)
	e.saves.stop()
}

func (e *Engine) startLocked() {
	if e.timer.Running() {
		return
	}
	e.timer.Start()
	e.loop.Start(e.tick)
}

func (e *Engine) pauseLocked() {
	if !e.timer.Running() {
		return
	}
	e.loop.Stop()
	e.timer.Pause()
	e.saves.flush(e.persistLapsLocked)
}

// tick runs on every scheduler tick. A tick raced with a pause or
// reset finds the timer stopped and does nothing.
func (e *Engine) tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.timer.Running() {
		return
	}
	e.saves.maybeSave(e.clock.Now(), e.persistLapsLocked)
	if e.onTick != nil {
		e.onTick(e.snapshotLocked())
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	elapsed := e.timer.Elapsed()
	return Snapshot{
		State:      e.timer.State(),
		Elapsed:    elapsed,
		CurrentLap: e.ledger.CurrentLap(elapsed),
		LapCount:   e.ledger.Len(),
	}
}

func (e *Engine) persistLapsLocked() {
	if e.storage == nil {
		return
	}
	if err := e.storage.SaveLaps(e.ledger.Laps()); err != nil {
		e.logger.CaptureError(fmt.Errorf("stopwatch: saving laps: %w", err))
	}
}
