package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/subdeck/subdeck/internal/subtrack"
)

// fakeClock hands out a controllable time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func samplePage() subtrack.ListPage {
	return subtrack.ListPage{
		Items: []subtrack.Subscription{
			{ID: 1, Name: "Netflix", Cost: 15.49, Currency: "USD"},
			{ID: 2, Name: "Spotify", Cost: 9.99, Currency: "USD"},
		},
		Total:         2,
		MonthlyTotals: map[string]float64{"USD": 25.48},
	}
}

func TestStore_TTLBoundary(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore("", clock.now)

	store.Save(samplePage())

	clock.advance(299 * time.Second)
	if _, ok := store.Load(); !ok {
		t.Fatalf("snapshot at t0+299s should still be servable")
	}

	clock.advance(2 * time.Second)
	if _, ok := store.Load(); ok {
		t.Fatalf("snapshot at t0+301s should be stale")
	}

	// Stale entries are ignored, not purged: a fresh save overwrites in place.
	store.Save(samplePage())
	if _, ok := store.Load(); !ok {
		t.Fatalf("overwritten snapshot should be servable again")
	}
}

func TestStore_SaveOverwritesPrevious(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := NewStore("", clock.now)

	store.Save(samplePage())
	replacement := subtrack.ListPage{Items: []subtrack.Subscription{{ID: 9, Name: "Hulu"}}, Total: 1}
	store.Save(replacement)

	got, ok := store.Load()
	if !ok {
		t.Fatalf("Load returned no snapshot")
	}
	if len(got.Items) != 1 || got.Items[0].ID != 9 {
		t.Fatalf("items = %v, want the replacement snapshot", got.Items)
	}
}

func TestStore_EmptyUntilFirstSave(t *testing.T) {
	store := NewStore("", nil)
	if _, ok := store.Load(); ok {
		t.Fatalf("empty store should not serve a snapshot")
	}
	if _, ok := store.CapturedAt(); ok {
		t.Fatalf("empty store should have no capture timestamp")
	}
}

func TestStore_LoadReturnsClone(t *testing.T) {
	store := NewStore("", nil)
	store.Save(samplePage())

	first, ok := store.Load()
	if !ok {
		t.Fatalf("Load returned no snapshot")
	}
	first.Items[0].Name = "mutated"
	first.MonthlyTotals["USD"] = -1

	second, _ := store.Load()
	if second.Items[0].Name == "mutated" {
		t.Fatalf("Load should clone items")
	}
	if second.MonthlyTotals["USD"] == -1 {
		t.Fatalf("Load should clone totals")
	}
}

func TestStore_PersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}

	store := NewStore(dir, clock.now)
	store.Save(samplePage())

	if _, err := os.Stat(filepath.Join(dir, snapshotFile)); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	reopened := NewStore(dir, clock.now)
	got, ok := reopened.Load()
	if !ok {
		t.Fatalf("reopened store should serve the persisted snapshot")
	}
	if got.Total != 2 || len(got.Items) != 2 {
		t.Fatalf("persisted page = %#v, want 2 items", got)
	}

	clock.advance(6 * time.Minute)
	if _, ok := reopened.Load(); ok {
		t.Fatalf("persisted snapshot should honor the TTL")
	}
}

func TestStore_CorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, snapshotFile), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := NewStore(dir, nil)
	if _, ok := store.Load(); ok {
		t.Fatalf("corrupt snapshot should be ignored")
	}
}
