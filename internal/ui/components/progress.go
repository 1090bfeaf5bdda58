package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// ProgressBar is a one-line bar used for level, course and lesson progress.
type ProgressBar struct {
	Label       string
	Percent     float64 // clamped to 0..1 when drawn
	ShowPercent bool
	Width       int // whole line, label and percent included
	Color       color.Color
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width, Color: theme.Primary}
}

func (p ProgressBar) View() string {
	frac := math.Min(math.Max(p.Percent, 0), 1)
	if math.IsNaN(p.Percent) {
		frac = 0
	}

	var head, tail string
	if p.Label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		tail = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d%%", int(math.Round(frac*100))))
	}

	barWidth := max(p.Width-lipgloss.Width(head)-lipgloss.Width(tail), 4)
	filled := int(math.Round(float64(barWidth) * frac))

	fill := p.Color
	if fill == nil {
		fill = theme.Primary
	}
	return head +
		lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)) +
		tail
}
