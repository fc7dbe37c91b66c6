package list

import (
	"sort"
	"strings"

	"github.com/subdeck/subdeck/internal/subtrack"
)

// compare orders two subscriptions by the given field, ascending. Ties fall
// back to the record ID so ordering stays deterministic.
func compare(a, b subtrack.Subscription, field SortField) int {
	var c int
	switch field {
	case SortName:
		c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortCost:
		switch {
		case a.Cost < b.Cost:
			c = -1
		case a.Cost > b.Cost:
			c = 1
		}
	case SortCreatedAt:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			c = -1
		case b.CreatedAt.Before(a.CreatedAt):
			c = 1
		}
	default: // SortNextBilling
		switch {
		case a.NextBillingDate.Before(b.NextBillingDate):
			c = -1
		case b.NextBillingDate.Before(a.NextBillingDate):
			c = 1
		}
	}
	if c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

// less applies the sort direction on top of compare.
func less(a, b subtrack.Subscription, field SortField, dir SortDir) bool {
	c := compare(a, b, field)
	if dir == Descending {
		return c > 0
	}
	return c < 0
}

// insertIndex returns the position at which sub belongs in items, assuming
// items is already ordered by field/dir. Equal elements keep their existing
// relative order; the new element lands after them.
func insertIndex(items []subtrack.Subscription, sub subtrack.Subscription, field SortField, dir SortDir) int {
	return sort.Search(len(items), func(i int) bool {
		return less(sub, items[i], field, dir)
	})
}
