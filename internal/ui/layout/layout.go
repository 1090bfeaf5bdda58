package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3
	SidebarWidth = 22

	CompactWidthThreshold  = 110
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// SidebarItem is one navigation entry.
type SidebarItem struct {
	Key    string
	Label  string
	Active bool
}

// HeaderStats are the learner numbers shown on the right of the header.
type HeaderStats struct {
	Streak int
	Points int
	Level  int
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// MainWidth is the width left for screen content beside the sidebar.
func MainWidth(totalWidth int) int {
	return max(totalWidth-SidebarWidth, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the brand, the current view title and the
// learner's streak, XP and level.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  MECHDYANE")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("🔥 %d DAY STREAK", stats.Streak)) +
		"   " +
		lipgloss.NewStyle().
			Foreground(theme.Primary).
			Render(fmt.Sprintf("%d XP · Lv %d", stats.Points, stats.Level))

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0)

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderSidebar renders the tab list down the left edge.
func RenderSidebar(items []SidebarItem, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, it := range items {
		line := fmt.Sprintf(" %s  %s", it.Key, it.Label)
		if it.Active {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Primary).
				Bold(true).
				Width(SidebarWidth - 2).
				Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(SidebarWidth - 2).
				Render(line))
		}
		b.WriteString("\n\n")
	}

	return lipgloss.NewStyle().
		Width(SidebarWidth).
		Height(height).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(b.String())
}

// RenderFrame composes the full frame: header, sidebar beside the
// content, and footer.
func RenderFrame(header, sidebar, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := max(height-headerHeight-footerHeight, 0)

	main := lipgloss.NewStyle().
		Width(MainWidth(width)).
		Height(contentHeight).
		Padding(0, 1).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	return header + "\n" + body + "\n" + footer
}
