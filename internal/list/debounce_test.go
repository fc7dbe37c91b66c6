package list

import (
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidChanges(t *testing.T) {
	d := NewDebouncer(0)

	// Three keystrokes inside the quiet period arm three generations.
	gen1 := d.Arm("net")
	gen2 := d.Arm("netf")
	gen3 := d.Arm("netfl")

	// The timers for the first two keystrokes were superseded; when they
	// fire they must do nothing.
	if _, ok := d.Fire(gen1); ok {
		t.Fatalf("superseded generation %d should not fire", gen1)
	}
	if _, ok := d.Fire(gen2); ok {
		t.Fatalf("superseded generation %d should not fire", gen2)
	}

	text, ok := d.Fire(gen3)
	if !ok {
		t.Fatalf("latest generation should fire")
	}
	if text != "netfl" {
		t.Fatalf("fired text = %q, want netfl", text)
	}
}

func TestDebouncer_ExactlyOneFetchForFinalText(t *testing.T) {
	d := NewDebouncer(0)

	fetches := 0
	var fetched string
	var gens []uint64
	for _, text := range []string{"net", "netf", "netfl", "netflix"} {
		gens = append(gens, d.Arm(text))
	}
	for _, gen := range gens {
		if text, ok := d.Fire(gen); ok {
			fetches++
			fetched = text
		}
	}
	if fetches != 1 {
		t.Fatalf("fetches = %d, want exactly 1", fetches)
	}
	if fetched != "netflix" {
		t.Fatalf("fetched text = %q, want netflix", fetched)
	}
}

func TestDebouncer_CancelInvalidatesOutstanding(t *testing.T) {
	d := NewDebouncer(0)
	gen := d.Arm("netflix")
	d.Cancel()
	if _, ok := d.Fire(gen); ok {
		t.Fatalf("cancelled generation should not fire")
	}
}

func TestDebouncer_IntervalDefault(t *testing.T) {
	if got := NewDebouncer(0).Interval(); got != DebounceInterval {
		t.Fatalf("Interval = %v, want %v", got, DebounceInterval)
	}
	if got := NewDebouncer(time.Second).Interval(); got != time.Second {
		t.Fatalf("Interval = %v, want 1s", got)
	}
}
