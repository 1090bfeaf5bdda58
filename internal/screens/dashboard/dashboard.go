// Package dashboard is the landing tab: learner stats, the active course,
// recent activity and topic recommendations.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/store"
	"github.com/mechdyane/mechdyane/internal/ui/components"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// ActivityDays is how many days the activity chart covers.
const ActivityDays = 7

type activityLoadedMsg struct {
	Days []store.DayXP
	Err  error
}

// DashboardScreen is the home tab.
type DashboardScreen struct {
	ctrl *shell.Controller
	menu components.Menu

	activity []store.DayXP
	loaded   bool
	errMsg   string
	notice   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(ctrl *shell.Controller) *DashboardScreen {
	s := &DashboardScreen{ctrl: ctrl}
	s.buildMenu()
	return s
}

func (s *DashboardScreen) buildMenu() {
	items := []components.MenuItem{s.courseItem()}
	for _, rec := range s.ctrl.Recommendations() {
		items = append(items, components.MenuItem{
			Label:  rec.Domain.Icon + "  " + rec.Topic,
			Detail: rec.Domain.Name,
			Action: func() tea.Cmd { return router.StartLesson(rec.Topic, rec.Domain.Name) },
		})
	}
	s.menu = s.menu.WithItems(items)
}

// courseItem resumes the active course, or points at Explore without one.
func (s *DashboardScreen) courseItem() components.MenuItem {
	if s.ctrl.Progress().Course.Active() {
		return components.MenuItem{
			Label:  "▶  Resume course",
			Action: func() tea.Cmd { return router.Navigate(shell.TabExplore) },
		}
	}
	return components.MenuItem{
		Label:  "🧭  Explore courses",
		Action: func() tea.Cmd { return router.Navigate(shell.TabExplore) },
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		days, err := ctrl.Activity(context.Background(), ActivityDays)
		return activityLoadedMsg{Days: days, Err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "R", Description: "New suggestions"},
		{Key: "1-5", Description: "Tabs"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.activity = msg.Days
		}
		s.loaded = true
		return s, nil

	case router.RefreshRecommendationsMsg:
		s.notice = ""
		return s, nil

	case shell.RecommendLoaded:
		s.buildMenu()
		s.notice = s.ctrl.Notice()
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, func() tea.Msg { return router.RefreshRecommendationsMsg{} }
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	p := s.ctrl.Progress()
	prof := s.ctrl.Profile()
	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Welcome back, %s!", prof.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · ready to level up today?", prof.Track)))
	b.WriteString("\n\n")

	b.WriteString(s.viewCourse(width))
	b.WriteString("\n")

	cardWidth := max((width-6)/4, 14)
	b.WriteString(components.Row(
		components.StatCard("🔥", "Streak", fmt.Sprintf("%d Days", p.Streak), theme.Accent, cardWidth),
		components.StatCard("🏆", "Level", fmt.Sprintf("Lv. %d", p.Level), theme.Primary, cardWidth),
		components.StatCard("⭐", "Total XP", humanize.Comma(int64(p.Points)), theme.Success, cardWidth),
		components.StatCard("🎯", "Total Done", fmt.Sprintf("%d", len(p.CompletedLessons)), theme.Secondary, cardWidth),
	))
	b.WriteString("\n")

	lvl := components.NewProgressBar(fmt.Sprintf("Lv %d → %d", p.Level, p.NextLevel()), p.LevelProgress(), true, width-2)
	b.WriteString(lvl.View())
	b.WriteString("\n\n")

	if !layout.IsCompactHeight(height) {
		b.WriteString(components.SectionTitle("Learning Activity"))
		b.WriteString(theme.Subtitle.Render("  XP earned over the last week"))
		b.WriteString("\n")
		b.WriteString(s.viewActivity())
		b.WriteString("\n\n")
	}

	b.WriteString(components.SectionTitle("Recommended for you"))
	if s.ctrl.RecommendBusy() {
		b.WriteString(theme.Hint.Render("  refreshing..."))
	}
	b.WriteString("\n")
	b.WriteString(s.menu.View(true))
	if s.notice != "" {
		b.WriteString(theme.Notice.Render(s.notice))
		b.WriteString("\n")
	}

	if badges := p.TopBadges(3); len(badges) > 0 {
		b.WriteString("\n")
		b.WriteString(components.SectionTitle("Recent Badges"))
		b.WriteString("\n")
		var tiles []string
		for _, bd := range badges {
			tiles = append(tiles, bd.Icon+" "+lipgloss.NewStyle().Foreground(theme.Gold).Render(bd.Name))
		}
		b.WriteString(strings.Join(tiles, "    "))
	}
	return b.String()
}

func (s *DashboardScreen) viewCourse(width int) string {
	p := s.ctrl.Progress()
	if !p.Course.Active() {
		body := theme.Heading.Render("Ready to start your journey?") + "\n" +
			theme.Subtitle.Render("Pick a course from Explore and start leveling up today!")
		return components.Card(body, width-2)
	}
	done := len(p.CompletedLessons)
	head := theme.Selected.Render("ACTIVE COURSE") +
		theme.Subtitle.Render(fmt.Sprintf("  ·  %d of %d lessons finished", done, p.CourseTotal()))
	bar := components.NewProgressBar("", float64(p.CoursePercent())/100, true, width-6)
	body := head + "\n" + theme.Heading.Render(p.Course.Title) + "\n" + bar.View()
	return components.Card(body, width-2)
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

func (s *DashboardScreen) viewActivity() string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render("Couldn't load activity: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Render("Loading activity...")
	}
	if len(s.activity) == 0 {
		return theme.Hint.Render("Finish a lesson to start your activity chart.")
	}
	return Sparkline(s.activity)
}

// Sparkline renders one bar per day, scaled to the busiest day, with
// weekday labels underneath.
func Sparkline(days []store.DayXP) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.XP)
	}

	var bars, labels []string
	for _, d := range days {
		block := sparkBlocks[0]
		if peak > 0 {
			block = sparkBlocks[d.XP*(len(sparkBlocks)-1)/peak]
		}
		bars = append(bars, lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat(string(block), 3)))
		labels = append(labels, theme.Subtitle.Render(d.Day.Format("Mon")))
	}
	return strings.Join(bars, " ") + "\n" + strings.Join(labels, " ")
}
