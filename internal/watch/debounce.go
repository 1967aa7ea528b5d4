package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single deferred call of fire.
// Each Trigger re-arms the timer for a full interval, so fire runs one quiet
// interval after the last trigger of a burst. Ingestion and firing race by
// nature; the mutex around the single timer handle is the only guard needed.
type Debouncer struct {
	interval time.Duration
	fire     func()

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(interval time.Duration, fire func()) *Debouncer {
	return &Debouncer{interval: interval, fire: fire}
}

// Trigger arms the timer, or resets a pending one to a fresh full interval.
// After Stop it is a no-op.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.interval, func() { d.fired(t) })
	d.timer = t
}

// fired runs in the timer goroutine. A timer that was superseded by a later
// Trigger (it fired while the reset was in flight) is no longer the current
// handle and must not call fire.
func (d *Debouncer) fired(t *time.Timer) {
	d.mu.Lock()
	if d.stopped || d.timer != t {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fire()
}

// Flush synchronously fires a pending trigger now. No-op when idle.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	d.fire()
}

// Stop cancels any pending trigger and blocks all future ones. A fire already
// in progress is allowed to finish.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a trigger is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
