package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subdeck/subdeck/internal/list"
	"github.com/subdeck/subdeck/internal/subtrack"
)

const (
	colName    = 26
	colCost    = 12
	colCycle   = 10
	colStatus  = 10
	colBilling = 12
)

func (m Model) renderMain() string {
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(st))
	b.WriteString("\n")
	b.WriteString(m.renderTable(st))

	if m.snap.Pending != nil {
		b.WriteString("\n")
		b.WriteString(m.renderUndoToast(st))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(st))
	return b.String()
}

// renderHeader shows the list scope, the per-currency monthly totals, and any
// offline or status banner.
func (m Model) renderHeader(st Styles) string {
	q := m.snap.Query

	title := st.AccentText.Bold(true).Render("subdeck")
	scope := st.MutedText.Render(fmt.Sprintf(" %s · sort %s %s", scopeLabel(q), q.SortBy, q.Order))

	parts := []string{title + scope}

	if totals := formatTotals(m.snap.MonthlyTotals); totals != "" {
		parts = append(parts, st.Text.Render("monthly "+totals))
	}

	count := fmt.Sprintf("%d of %d", len(m.snap.Items), m.snap.Total)
	if m.snap.Loading {
		count += " · loading"
	}
	parts = append(parts, st.FaintText.Render(count))

	line := strings.Join(parts, st.FaintText.Render("  │  "))

	if m.snap.Offline {
		line += "\n" + st.WarningText.Render("⚠ offline — showing cached data")
	} else if m.status != "" {
		line += "\n" + st.WarningText.Render(m.status)
	}

	if m.searching {
		line += "\n" + st.AccentText.Render(m.searchInput.View())
	} else if q.Search != "" {
		line += "\n" + st.MutedText.Render("search: "+q.Search)
	}
	return line
}

func (m Model) renderTable(st Styles) string {
	if len(m.snap.Items) == 0 {
		if m.snap.Loading {
			return st.MutedText.Render("  Loading subscriptions...")
		}
		return st.MutedText.Render("  No subscriptions match the current filters.")
	}

	var b strings.Builder
	head := fmt.Sprintf("  %-*s %*s  %-*s %-*s %-*s",
		colName, "NAME",
		colCost, "COST",
		colCycle, "CYCLE",
		colStatus, "STATUS",
		colBilling, "NEXT BILLING")
	b.WriteString(st.FaintText.Render(head))
	b.WriteString("\n")

	for i, sub := range m.snap.Items {
		row := fmt.Sprintf("  %-*s %*s  %-*s %-*s %-*s",
			colName, truncate(sub.Name, colName),
			colCost, formatMoney(sub.Cost, sub.Currency),
			colCycle, string(sub.BillingCycle),
			colStatus, string(sub.Status),
			colBilling, formatDate(sub.NextBillingDate))

		switch {
		case i == m.selected:
			b.WriteString(st.Selected.Render(row))
		case sub.Status == subtrack.StatusCancelled:
			b.WriteString(st.FaintText.Render(row))
		default:
			b.WriteString(st.Text.Render(row))
		}
		b.WriteString("\n")
	}

	if len(m.snap.Items) < m.snap.Total {
		b.WriteString(st.FaintText.Render(fmt.Sprintf("  … %d more (L to load)", m.snap.Total-len(m.snap.Items))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderUndoToast shows the countdown banner for a pending deletion.
func (m Model) renderUndoToast(st Styles) string {
	p := m.snap.Pending
	if p.Restoring {
		return st.Toast.Render(fmt.Sprintf("Restoring %q…", p.Subscription.Name))
	}
	return st.Toast.Render(fmt.Sprintf("Deleted %q — press u to undo (%ds)  x to dismiss",
		p.Subscription.Name, p.Remaining))
}

func (m Model) renderFooter(st Styles) string {
	return st.FaintText.Render("  / search  f status  c cycle  s/S sort  d delete  u undo  r reload  ? help  q quit")
}

func (m Model) renderSessionExpired() string {
	st := m.theme.Styles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 3)

	body := st.DangerText.Render("Session expired") + "\n\n" +
		st.Text.Render("Your authentication token is no longer valid.") + "\n" +
		st.MutedText.Render("Update the token in your config file and restart.") + "\n\n" +
		st.FaintText.Render("press q to quit")
	return box.Render(body)
}

// scopeLabel names the active status filter for the header.
func scopeLabel(q list.Query) string {
	label := string(q.Status)
	if q.BillingCycle != "" {
		label += " · " + string(q.BillingCycle)
	}
	if q.CategoryID != nil {
		label += fmt.Sprintf(" · category %d", *q.CategoryID)
	}
	return label
}

// formatTotals renders per-currency monthly totals in a stable order.
func formatTotals(totals map[string]float64) string {
	if len(totals) == 0 {
		return ""
	}
	currencies := make([]string, 0, len(totals))
	for c := range totals {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	parts := make([]string, 0, len(currencies))
	for _, c := range currencies {
		parts = append(parts, formatMoney(totals[c], c))
	}
	return strings.Join(parts, " + ")
}
