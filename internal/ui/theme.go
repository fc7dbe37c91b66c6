package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Header and toast surfaces

	SelectionBg   string // Selected row background
	SelectionText string // Selected row text

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Warning)).
			Padding(0, 1),
	}
}

// Styles bundles the Lipgloss styles derived from a Theme.
type Styles struct {
	Header      lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	Selected    lipgloss.Style
	Toast       lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		SelectionBg:   "#6272a4",
		SelectionText: "#f8f8f2",
		Text:          "#f8f8f2",
		Muted:         "#9ea8c7",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
	},
	{
		Name:          "Nord",
		Background:    "#2e3440",
		Surface:       "#3b4252",
		SelectionBg:   "#4c566a",
		SelectionText: "#eceff4",
		Text:          "#e5e9f0",
		Muted:         "#aeb8cc",
		Faint:         "#616e88",
		Accent:        "#88c0d0",
		Success:       "#a3be8c",
		Warning:       "#ebcb8b",
		Danger:        "#bf616a",
	},
	{
		Name:          "Gruvbox",
		Background:    "#282828",
		Surface:       "#3c3836",
		SelectionBg:   "#504945",
		SelectionText: "#fbf1c7",
		Text:          "#ebdbb2",
		Muted:         "#bdae93",
		Faint:         "#7c6f64",
		Accent:        "#83a598",
		Success:       "#b8bb26",
		Warning:       "#fabd2f",
		Danger:        "#fb4934",
	},
}

// GetTheme returns the named theme, defaulting to the first registered theme
// when the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given theme, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
