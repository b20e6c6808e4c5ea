package filter

import (
	"sync"
	"time"
)

// DefaultDebounce is the delay applied to live filter text input.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer schedules a callback after a delay; a new Call cancels the
// previously pending callback. It models the "latest keystroke wins"
// policy for live filter input.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer. A non-positive delay falls back to
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the configured delay, cancelling any
// callback still pending from a previous Call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
