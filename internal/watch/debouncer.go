package watch

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces rapid events into a single callback invocation.
// The callback fires once the interval passes without new events and
// receives every distinct path seen since the previous firing, in first-seen
// order.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	callback func(paths []string)
	pending  []string
}

// NewDebouncer creates a debouncer that waits for interval of quiet before
// firing callback.
func NewDebouncer(interval time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		interval: interval,
		callback: callback,
	}
}

// Trigger records an event for the given path and restarts the quiet period.
func (d *Debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !slices.Contains(d.pending, path) {
		d.pending = append(d.pending, path)
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("debouncer callback panicked", slog.Any("error", r))
			}
		}()

		d.mu.Lock()
		paths := d.pending
		d.pending = nil
		d.mu.Unlock()

		if len(paths) > 0 {
			d.callback(paths)
		}
	})
}

// Stop cancels any pending debounced callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.pending = nil
}
