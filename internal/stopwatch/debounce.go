package stopwatch

import (
	"time"

	"golang.org/x/time/rate"
)

const (
	lapSaveInterval = 500 * time.Millisecond
	lapSaveBurst    = 1
)

// saveDebouncer rate-limits lap history writes so rapid lap entry does
// not turn into one disk write per lap.
//
// It is not safe for concurrent use; the engine serializes access.
type saveDebouncer struct {
	limiter *rate.Limiter
	dirty   bool
	stopped bool
}

func newSaveDebouncer() *saveDebouncer {
	return &saveDebouncer{
		limiter: rate.NewLimiter(rate.Every(lapSaveInterval), lapSaveBurst),
	}
}

// markDirty records that the stored history is stale.
func (d *saveDebouncer) markDirty() {
	d.dirty = true
}

// maybeSave calls save if the history is stale and the rate limiter
// allows a write at time now.
func (d *saveDebouncer) maybeSave(now time.Time, save func()) {
	if d.stopped || !d.dirty {
		return
	}
	if !d.limiter.AllowN(now, 1) {
		return
	}
	save()
	d.dirty = false
}

// flush calls save immediately if the history is stale.
func (d *saveDebouncer) flush(save func()) {
	if d.stopped || !d.dirty {
		return
	}
	save()
	d.dirty = false
}

// stop makes all future operations no-ops.
func (d *saveDebouncer) stop() {
	d.stopped = true
}
