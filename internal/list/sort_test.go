package list

import (
	"testing"
	"time"

	"github.com/subdeck/subdeck/internal/subtrack"
)

func mustDate(t *testing.T, s string) subtrack.Date {
	t.Helper()
	d, err := subtrack.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) returned error: %v", s, err)
	}
	return d
}

func TestCompare_Fields(t *testing.T) {
	t.Parallel()

	a := subtrack.Subscription{
		ID:              1,
		Name:            "netflix",
		Cost:            15.49,
		NextBillingDate: subtrack.Date{Year: 2026, Month: time.March, Day: 1},
		CreatedAt:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	b := subtrack.Subscription{
		ID:              2,
		Name:            "Spotify",
		Cost:            9.99,
		NextBillingDate: subtrack.Date{Year: 2026, Month: time.March, Day: 15},
		CreatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name  string
		field SortField
		want  int
	}{
		{"name is case-insensitive", SortName, -1},
		{"cost compares numerically", SortCost, 1},
		{"next billing compares dates", SortNextBilling, -1},
		{"created at compares timestamps", SortCreatedAt, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compare(a, b, tt.field); got != tt.want {
				t.Errorf("compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCompare_TieBreaksOnID(t *testing.T) {
	a := subtrack.Subscription{ID: 1, Name: "Same"}
	b := subtrack.Subscription{ID: 2, Name: "same"}
	if got := compare(a, b, SortName); got != -1 {
		t.Fatalf("compare tie = %d, want -1 (lower id first)", got)
	}
}

func TestInsertIndex_RespectsSortDirection(t *testing.T) {
	items := []subtrack.Subscription{
		{ID: 1, Cost: 5},
		{ID: 2, Cost: 10},
		{ID: 3, Cost: 20},
	}
	sub := subtrack.Subscription{ID: 4, Cost: 12}

	if idx := insertIndex(items, sub, SortCost, Ascending); idx != 2 {
		t.Fatalf("ascending insertIndex = %d, want 2", idx)
	}

	desc := []subtrack.Subscription{
		{ID: 3, Cost: 20},
		{ID: 2, Cost: 10},
		{ID: 1, Cost: 5},
	}
	if idx := insertIndex(desc, sub, SortCost, Descending); idx != 1 {
		t.Fatalf("descending insertIndex = %d, want 1", idx)
	}
}

func TestInsertIndex_EqualKeysLandAfterExisting(t *testing.T) {
	items := []subtrack.Subscription{
		{ID: 1, Cost: 10},
		{ID: 2, Cost: 10},
		{ID: 9, Cost: 30},
	}
	sub := subtrack.Subscription{ID: 5, Cost: 10}
	if idx := insertIndex(items, sub, SortCost, Ascending); idx != 2 {
		t.Fatalf("insertIndex = %d, want 2 (after equal-cost run up to id 5)", idx)
	}
}

func TestInsertIndex_DateField(t *testing.T) {
	items := []subtrack.Subscription{
		{ID: 1, NextBillingDate: mustDate(t, "2026-01-05")},
		{ID: 2, NextBillingDate: mustDate(t, "2026-02-01")},
	}
	sub := subtrack.Subscription{ID: 3, NextBillingDate: mustDate(t, "2026-01-20")}
	if idx := insertIndex(items, sub, SortNextBilling, Ascending); idx != 1 {
		t.Fatalf("insertIndex = %d, want 1", idx)
	}
	if idx := insertIndex(nil, sub, SortNextBilling, Ascending); idx != 0 {
		t.Fatalf("insertIndex into empty = %d, want 0", idx)
	}
}
