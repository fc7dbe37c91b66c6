package ui

import (
	"testing"

	"github.com/subdeck/subdeck/internal/list"
	"github.com/subdeck/subdeck/internal/subtrack"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Netflix", 10, "Netflix"},
		{"Netflix", 7, "Netflix"},
		{"Netflix", 4, "Net…"},
		{"Netflix", 1, "…"},
		{"Netflix", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := formatMoney(9.99, "USD"); got != "9.99 USD" {
		t.Errorf("formatMoney = %q", got)
	}
	if got := formatMoney(12.5, ""); got != "12.50" {
		t.Errorf("formatMoney without currency = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(subtrack.Date{}); got != "—" {
		t.Errorf("zero date = %q, want dash", got)
	}
	d, err := subtrack.ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := formatDate(d); got != "2026-09-01" {
		t.Errorf("formatDate = %q", got)
	}
}

func TestFormatTotals(t *testing.T) {
	if got := formatTotals(nil); got != "" {
		t.Errorf("empty totals = %q, want empty string", got)
	}
	totals := map[string]float64{"USD": 25.49, "EUR": 9.99}
	// Currencies render in sorted order regardless of map iteration.
	want := "9.99 EUR + 25.49 USD"
	for i := 0; i < 10; i++ {
		if got := formatTotals(totals); got != want {
			t.Fatalf("formatTotals = %q, want %q", got, want)
		}
	}
}

func TestNextStatusFilter(t *testing.T) {
	order := []list.StatusFilter{list.FilterActive, list.FilterCancelled, list.FilterAll, list.FilterActive}
	for i := 0; i < len(order)-1; i++ {
		if got := nextStatusFilter(order[i]); got != order[i+1] {
			t.Errorf("nextStatusFilter(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestNextSortField(t *testing.T) {
	order := []list.SortField{list.SortNextBilling, list.SortName, list.SortCost, list.SortCreatedAt, list.SortNextBilling}
	for i := 0; i < len(order)-1; i++ {
		if got := nextSortField(order[i]); got != order[i+1] {
			t.Errorf("nextSortField(%s) = %s, want %s", order[i], got, order[i+1])
		}
	}
}

func TestNextCycleFilter(t *testing.T) {
	order := []subtrack.BillingCycle{"", subtrack.CycleWeekly, subtrack.CycleMonthly, subtrack.CycleQuarterly, subtrack.CycleYearly, ""}
	for i := 0; i < len(order)-1; i++ {
		if got := nextCycleFilter(order[i]); got != order[i+1] {
			t.Errorf("nextCycleFilter(%q) = %q, want %q", order[i], got, order[i+1])
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nord" {
		t.Errorf("NextTheme(Dracula) = %q", got)
	}
	if got := NextTheme("Gruvbox"); got != "Dracula" {
		t.Errorf("NextTheme(Gruvbox) = %q, want wrap to Dracula", got)
	}
	if got := NextTheme("nope"); got != "Dracula" {
		t.Errorf("NextTheme(unknown) = %q, want first theme", got)
	}
}
