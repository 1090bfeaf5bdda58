// Package profile shows the learner card, interests and settings.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/ui/components"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

type todayLoadedMsg struct {
	XP  int
	Err error
}

// ProfileScreen is the settings tab.
type ProfileScreen struct {
	ctrl    *shell.Controller
	menu    components.Menu
	todayXP int
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(ctrl *shell.Controller) *ProfileScreen {
	s := &ProfileScreen{ctrl: ctrl}
	s.buildMenu()
	return s
}

func (s *ProfileScreen) buildMenu() {
	prof := s.ctrl.Profile()
	var items []components.MenuItem
	for _, d := range catalog.Domains() {
		items = append(items, components.MenuItem{
			Label: checkbox(prof.HasInterest(d.Name)) + " " + d.Icon + "  " + d.Name,
			Action: func() tea.Cmd {
				_ = s.ctrl.ToggleInterest(d.Name)
				return nil
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  toggle(prof.EmailNotifications) + " Email Notifications",
			Detail: "Weekly progress summaries",
			Action: func() tea.Cmd {
				s.ctrl.ToggleEmailNotifications()
				return nil
			},
		},
		components.MenuItem{
			Label:  toggle(prof.PublicProfile) + " Public Profile",
			Detail: "Show on global leaderboard",
			Action: func() tea.Cmd {
				s.ctrl.TogglePublicProfile()
				return nil
			},
		},
	)
	s.menu = s.menu.WithItems(items)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func toggle(on bool) string {
	if on {
		return "(ON) "
	}
	return "(OFF)"
}

func (s *ProfileScreen) Init() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		days, err := ctrl.Activity(context.Background(), 1)
		msg := todayLoadedMsg{Err: err}
		if len(days) > 0 {
			msg.XP = days[len(days)-1].XP
		}
		return msg
	}
}

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle"},
		{Key: "1-5", Description: "Tabs"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case todayLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.todayXP = msg.XP
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "space" {
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		s.buildMenu()
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	prof := s.ctrl.Profile()
	p := s.ctrl.Progress()
	var b strings.Builder

	card := theme.Title.Render(prof.Name) + "\n" +
		theme.Subtitle.Render(fmt.Sprintf("Joined %s • %s", prof.Joined, prof.Track))
	b.WriteString(components.Card(card, width-2))
	b.WriteString("\n")

	cardWidth := max((width-4)/3, 16)
	b.WriteString(components.Row(
		components.StatCard("🏆", "Global Level", fmt.Sprintf("%d", p.Level), theme.Primary, cardWidth),
		components.StatCard("⭐", "Total XP Earned", humanize.Comma(int64(p.Points)), theme.Success, cardWidth),
		components.StatCard("🔥", "Current Streak", fmt.Sprintf("%d", p.Streak), theme.Accent, cardWidth),
	))
	b.WriteString("\n")

	b.WriteString(components.SectionTitle("Daily Goal"))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  Target: %d XP / Day", prof.DailyGoalXP)))
	b.WriteString("\n")
	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Couldn't load today's XP: " + s.errMsg))
	} else {
		pct := 0.0
		if prof.DailyGoalXP > 0 {
			pct = min(float64(s.todayXP)/float64(prof.DailyGoalXP), 1)
		}
		bar := components.NewProgressBar(fmt.Sprintf("%d XP today", s.todayXP), pct, true, width-2)
		bar.Color = theme.Accent
		b.WriteString(bar.View())
	}
	b.WriteString("\n\n")

	b.WriteString(components.SectionTitle("Interests & Settings"))
	b.WriteString("\n")
	b.WriteString(s.menu.View(true))
	return b.String()
}
