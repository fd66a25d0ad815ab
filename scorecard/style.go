package scorecard

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles used to render the scorecard.
type Style struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Hint     lipgloss.Style
	Cell     lipgloss.Style
	Cursor   lipgloss.Style
	Gold     lipgloss.Style
	Red      lipgloss.Style
	Blue     lipgloss.Style
	Plain    lipgloss.Style
	Total    lipgloss.Style
	Error    lipgloss.Style
	Complete lipgloss.Style
}

// NewStyle returns the scorecard palette. The colours follow the rings of
// a target face.
func NewStyle(darkTheme bool) Style {
	plain := lipgloss.Color("#1e1e2e")
	muted := lipgloss.Color("#6c7086")

	if darkTheme {
		plain = lipgloss.Color("#cdd6f4")
		muted = lipgloss.Color("#a6adc8")
	}

	cell := lipgloss.NewStyle().Width(4).Align(lipgloss.Right)

	return Style{
		Base:     lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#74c7ec")).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(muted),
		Cell:     cell.Foreground(muted),
		Cursor:   cell.Reverse(true),
		Gold:     cell.Foreground(lipgloss.Color("#f9e2af")).Bold(true),
		Red:      cell.Foreground(lipgloss.Color("#f38ba8")),
		Blue:     cell.Foreground(lipgloss.Color("#89b4fa")),
		Plain:    cell.Foreground(plain),
		Total:    lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
		Complete: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true),
	}
}

// score returns the style of a scored slot.
func (s Style) score(score int) lipgloss.Style {
	switch {
	case score >= 9:
		return s.Gold
	case score >= 7:
		return s.Red
	case score >= 5:
		return s.Blue
	default:
		return s.Plain
	}
}
