package list

import (
	"sync"
	"time"
)

// DebounceInterval is the quiet period between the last keystroke and the
// search fetch it triggers.
const DebounceInterval = 300 * time.Millisecond

// Debouncer coalesces rapid search-text changes into a single delayed fetch.
//
// It holds generation-stamped state only; the caller owns the timer. Each
// Arm supersedes every earlier generation, so a timer that fires for an old
// generation finds Fire reporting false and does nothing. That makes
// cancellation exact: no network call and no state mutation can come out of
// a superseded keystroke.
type Debouncer struct {
	mu       sync.Mutex
	gen      uint64
	text     string
	interval time.Duration
}

// NewDebouncer builds a Debouncer. A non-positive interval uses
// DebounceInterval.
func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DebounceInterval
	}
	return &Debouncer{interval: interval}
}

// Interval returns the quiet period the caller should wait before firing.
func (d *Debouncer) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interval
}

// Arm records the latest search text and returns the generation a timer must
// present to Fire. Any previously armed generation is superseded.
func (d *Debouncer) Arm(text string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	d.text = text
	return d.gen
}

// Fire resolves a timer expiry. It returns the armed text and true only when
// gen is still the latest generation; superseded or cancelled generations
// report false.
func (d *Debouncer) Fire(gen uint64) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return "", false
	}
	return d.text, true
}

// Cancel invalidates every outstanding generation without arming a new one.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
}
