package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded frame with the title set into its top border. Previous
// and Next show navigation markers on either side of the title; a false
// value draws the marker dimmed.
type Pane struct {
	Title    string
	Content  string
	Previous bool
	Next     bool
	Focused  bool
}

// Render draws the pane width columns wide. The height follows the content.
func (p Pane) Render(width int) string {
	if width < 8 {
		width = 8
	}
	border := colorOverlay
	if p.Focused {
		border = colorAccent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	prev, next := navMarker("‹", p.Previous), navMarker("›", p.Next)
	title := fitTitle(p.Title, innerWidth)
	titleText := " " + prev + " " + titleStyle.Render(title) + " " + next + " "
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	left := dashes / 2
	right := dashes - left

	rows := []string{
		borderStyle.Render("╭"+strings.Repeat("─", left)) + titleText + borderStyle.Render(strings.Repeat("─", right)+"╮"),
	}
	v := borderStyle.Render("│")
	for _, line := range strings.Split(p.Content, "\n") {
		line = padRightANSI(line, contentWidth)
		rows = append(rows, v+" "+line+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// fitTitle leaves room for the markers and the corner dashes.
func fitTitle(title string, innerWidth int) string {
	return ansi.Truncate(title, max(1, innerWidth-8), "…")
}

func navMarker(glyph string, enabled bool) string {
	if enabled {
		return lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(glyph)
	}
	return lipgloss.NewStyle().Foreground(colorSurface1).Render(glyph)
}
