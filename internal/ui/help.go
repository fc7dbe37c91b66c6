package ui

import (
	"fmt"
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

var helpSections = []helpSection{
	{
		title: "Navigation",
		items: []helpItem{
			{"j / ↓", "move down"},
			{"k / ↑", "move up"},
			{"g / home", "first row"},
			{"G / end", "last row"},
			{"L / pgdn", "load more"},
		},
	},
	{
		title: "Filtering & sorting",
		items: []helpItem{
			{"/", "search (enter applies, esc cancels)"},
			{"f", "cycle status filter"},
			{"c", "cycle billing-cycle filter"},
			{"s", "cycle sort column"},
			{"S", "flip sort direction"},
			{"r", "reload from server"},
		},
	},
	{
		title: "Actions",
		items: []helpItem{
			{"d", "delete selected subscription"},
			{"u", "undo pending deletion"},
			{"x", "dismiss undo banner"},
		},
	},
	{
		title: "Other",
		items: []helpItem{
			{"T", "cycle theme"},
			{"h / ?", "toggle this help"},
			{"q", "quit"},
		},
	},
}

func (m Model) renderHelp() string {
	st := m.theme.Styles()

	var b strings.Builder
	b.WriteString(st.AccentText.Bold(true).Render("subdeck — keys"))
	b.WriteString("\n")

	for _, sec := range helpSections {
		b.WriteString("\n")
		b.WriteString(st.Text.Bold(true).Render(sec.title))
		b.WriteString("\n")
		for _, it := range sec.items {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				st.AccentText.Render(fmt.Sprintf("%-9s", it.key)),
				st.MutedText.Render(it.desc)))
		}
	}

	b.WriteString("\n")
	b.WriteString(st.FaintText.Render("press any key to close"))
	return b.String()
}
