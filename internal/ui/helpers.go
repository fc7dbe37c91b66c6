package ui

import (
	"fmt"

	"github.com/subdeck/subdeck/internal/subtrack"
)

// truncate shortens s to max characters, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// formatMoney renders an amount with its currency code, e.g. "9.99 USD".
func formatMoney(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// formatDate renders a billing date, or a dash when unset.
func formatDate(d subtrack.Date) string {
	if d.IsZero() {
		return "—"
	}
	return d.String()
}
