package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// Card wraps content in a rounded border at the given outer width.
func Card(content string, width int) string {
	return theme.Card.Width(width).Render(content)
}

// FocusCard is Card with the highlight border.
func FocusCard(content string, width int, focused bool) string {
	if focused {
		return theme.CardFocused.Width(width).Render(content)
	}
	return Card(content, width)
}

// StatCard renders a small labelled number.
func StatCard(icon, label, value string, accent color.Color, width int) string {
	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(icon+" "+label) + "\n" +
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(value)
	return Card(body, width)
}

// Row joins blocks left to right with a one column gap.
func Row(blocks ...string) string {
	spaced := make([]string, 0, len(blocks)*2)
	for i, b := range blocks {
		if i > 0 {
			spaced = append(spaced, " ")
		}
		spaced = append(spaced, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
}

// SectionTitle renders a heading line.
func SectionTitle(s string) string {
	return theme.Heading.Render(s)
}
