// Package achievements shows the badge collection and the leaderboard.
package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/ui/components"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// ProLevel is the level that unlocks Pro rewards.
const ProLevel = 10

// AchievementsScreen is the trophy room tab.
type AchievementsScreen struct {
	ctrl *shell.Controller
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates an AchievementsScreen.
func New(ctrl *shell.Controller) *AchievementsScreen {
	return &AchievementsScreen{ctrl: ctrl}
}

func (s *AchievementsScreen) Init() tea.Cmd { return nil }

func (s *AchievementsScreen) Title() string { return "Achievements" }

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "1-5", Description: "Tabs"}}
}

func (s *AchievementsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	p := s.ctrl.Progress()
	var b strings.Builder

	unlocked := 0
	for _, bd := range progress.Badges {
		if p.Unlocked(bd.ID) {
			unlocked++
		}
	}
	b.WriteString(theme.Title.Render("Your Trophies"))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %d of %d unlocked", unlocked, len(progress.Badges))))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Showcase your dedication and skill mastery."))
	b.WriteString("\n\n")

	b.WriteString(badgeGrid(p, width))
	b.WriteString("\n")

	b.WriteString(s.viewPro(p, width))
	b.WriteString("\n\n")

	b.WriteString(components.SectionTitle("🏆 Leaderboard"))
	b.WriteString("\n")
	b.WriteString(viewBoard(s.ctrl.Leaderboard()))
	return b.String()
}

func badgeGrid(p progress.Progress, width int) string {
	cols := 3
	if layout.IsCompactWidth(width + layout.SidebarWidth) {
		cols = 2
	}
	tileWidth := max((width-2)/cols-1, 20)

	var rows []string
	var row []string
	for _, bd := range progress.Badges {
		row = append(row, badgeTile(bd, p.Unlocked(bd.ID), tileWidth))
		if len(row) == cols {
			rows = append(rows, components.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, components.Row(row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func badgeTile(bd progress.Badge, unlocked bool, width int) string {
	if !unlocked {
		body := theme.Locked.Render("🔒 "+bd.Name) + "\n" + theme.Locked.Render(bd.Description)
		return components.Card(body, width)
	}
	body := bd.Icon + " " + lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(bd.Name) + "\n" +
		theme.Subtitle.Render(bd.Description) + "\n" +
		theme.Correct.Render("UNLOCKED")
	return components.FocusCard(body, width, true)
}

func (s *AchievementsScreen) viewPro(p progress.Progress, width int) string {
	if p.Level >= ProLevel {
		return components.Card(theme.Correct.Render("✨ Pro Rewards unlocked! Enjoy your exclusive learning paths."), width-2)
	}
	pct := float64(p.Level) / ProLevel
	bar := components.NewProgressBar(fmt.Sprintf("Lv %d / %d", p.Level, ProLevel), pct, true, width-6)
	bar.Color = theme.Secondary
	body := theme.Heading.Render("Unlock Pro Rewards") + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Reach Level %d and unlock exclusive learning paths, early access features, and unique avatars.", ProLevel)) + "\n" +
		bar.View()
	return components.Card(body, width-2)
}

func viewBoard(board []progress.Entry) string {
	var b strings.Builder
	for i, e := range board {
		line := fmt.Sprintf("%2d.  %-20s %10s XP   Lv %d", i+1, e.Name, humanize.Comma(int64(e.Points)), e.Level)
		switch {
		case e.Me:
			b.WriteString(theme.Selected.Render("▸ " + line + "  (you)"))
		case i == 0:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render("  " + line))
		default:
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	rank := progress.Rank(board)
	if rank > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("You are #%d of %d", rank, len(board))))
	}
	return b.String()
}
