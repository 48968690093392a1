package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the console.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	Event lipgloss.Color
	Task  lipgloss.Color
	Plan  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	Event: lipgloss.Color("#74B9FF"), // Light blue
	Task:  lipgloss.Color("#FDCB6E"), // Yellow
	Plan:  lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains all the lipgloss styles for the console.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style

	SectionTitle lipgloss.Style
	SectionEmpty lipgloss.Style

	ItemID    lipgloss.Style
	ItemTitle lipgloss.Style
	ItemWhen  lipgloss.Style
	ItemTag   lipgloss.Style

	FeedbackOK  lipgloss.Style
	FeedbackErr lipgloss.Style

	InputPrompt lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default styles for the console.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(Colors.Secondary),

		SectionEmpty: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Muted),

		ItemID: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(4),

		ItemTitle: lipgloss.NewStyle(),

		ItemWhen: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ItemTag: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Italic(true),

		FeedbackOK: lipgloss.NewStyle().
			Foreground(Colors.Success),

		FeedbackErr: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// TypeStyle returns the accent style for an item glyph.
func (s Styles) TypeStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}
