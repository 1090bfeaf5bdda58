package dashboard

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/store"
)

func newScreen(t *testing.T, fake *content.Fake) (*shell.Controller, *DashboardScreen) {
	t.Helper()
	ctrl := shell.New(shell.Options{
		Provider: fake,
		Ledger:   progress.NewLedger(progress.Seed()),
		Profile:  shell.Profile{Name: "Sam", Track: "Beginner Track"},
	})
	return ctrl, New(ctrl)
}

func TestViewShowsLearnerStats(t *testing.T) {
	_, s := newScreen(t, content.NewFake())
	s.Update(activityLoadedMsg{})

	v := s.View(100, 40)
	for _, want := range []string{"Welcome back, Sam!", "450", "Lv. 1", catalog.SeedCourse.Title, "Introduction to Python Basics"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterStartsRecommendedLesson(t *testing.T) {
	_, s := newScreen(t, content.NewFake())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.StartLessonMsg)
	if !ok {
		t.Fatalf("expected StartLessonMsg, got %#v", cmd())
	}
	first := catalog.Recommendations(catalog.DefaultTopics)[0]
	if msg.Topic != first.Topic || msg.Domain != first.Domain.Name {
		t.Fatalf("start = %+v, want %+v", msg, first)
	}
}

func TestResumeGoesToExplore(t *testing.T) {
	_, s := newScreen(t, content.NewFake())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	nav, ok := cmd().(router.NavigateMsg)
	if !ok || nav.Tab != shell.TabExplore {
		t.Fatalf("expected NavigateMsg to explore, got %#v", cmd())
	}
}

func TestRefreshKey(t *testing.T) {
	_, s := newScreen(t, content.NewFake())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if _, ok := cmd().(router.RefreshRecommendationsMsg); !ok {
		t.Fatal("expected RefreshRecommendationsMsg")
	}
}

func TestRecommendationsRebuildMenu(t *testing.T) {
	fake := content.NewFake()
	fake.Topics = []string{"Color Theory"}
	ctrl, s := newScreen(t, fake)

	loaded := ctrl.RefreshRecommendations()()
	ctrl.DeliverRecommendations(loaded)
	s.Update(loaded)

	if len(s.menu.Items) != 2 {
		t.Fatalf("menu items = %d, want course plus one recommendation", len(s.menu.Items))
	}
	if !strings.Contains(s.menu.Items[1].Label, "Color Theory") {
		t.Fatalf("label = %q", s.menu.Items[1].Label)
	}
}

func TestRecommendationFailureShowsNotice(t *testing.T) {
	fake := content.NewFake()
	fake.RecommendErr = errors.New("boom")
	ctrl, s := newScreen(t, fake)

	loaded := ctrl.RefreshRecommendations()()
	ctrl.DeliverRecommendations(loaded)
	s.Update(loaded)

	if s.notice == "" {
		t.Fatal("expected a notice")
	}
	if !strings.Contains(s.View(100, 40), s.notice) {
		t.Fatal("notice not rendered")
	}
}

func TestActivityError(t *testing.T) {
	_, s := newScreen(t, content.NewFake())
	s.Update(activityLoadedMsg{Err: errors.New("disk full")})

	if !strings.Contains(s.View(100, 40), "disk full") {
		t.Fatal("expected activity error in view")
	}
}

func TestSparkline(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	days := []store.DayXP{
		{Day: monday, XP: 0},
		{Day: monday.AddDate(0, 0, 1), XP: 100},
		{Day: monday.AddDate(0, 0, 2), XP: 200},
	}
	out := Sparkline(days)
	if !strings.Contains(out, "▁▁▁") || !strings.Contains(out, "███") {
		t.Fatalf("unexpected bars:\n%s", out)
	}
	if !strings.Contains(out, "Mon") || !strings.Contains(out, "Wed") {
		t.Fatalf("missing day labels:\n%s", out)
	}
}
