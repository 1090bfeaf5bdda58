package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/store"
)

type fakeLog struct {
	today int
	err   error
}

func (f *fakeLog) AppendLessonEvent(context.Context, store.LessonEventData) error { return nil }
func (f *fakeLog) DailyXP(_ context.Context, from time.Time, days int) ([]store.DayXP, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]store.DayXP, days)
	out[days-1] = store.DayXP{Day: from, XP: f.today}
	return out, nil
}

func newScreen(events shell.EventLog) (*shell.Controller, *ProfileScreen) {
	ctrl := shell.New(shell.Options{
		Provider: content.NewFake(),
		Ledger:   progress.NewLedger(progress.Seed()),
		Events:   events,
		Profile: shell.Profile{
			Name:               "Sam",
			Joined:             "June 2024",
			Track:              "Beginner Track",
			Interests:          []string{"Marketing"},
			DailyGoalXP:        500,
			EmailNotifications: true,
		},
	})
	return ctrl, New(ctrl)
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestToggleInterest(t *testing.T) {
	ctrl, s := newScreen(nil)

	// Computer Studies is first.
	s.Update(enter)
	if !ctrl.Profile().HasInterest("Computer Studies") {
		t.Fatal("expected Computer Studies added")
	}
	if !strings.Contains(s.menu.Items[0].Label, "[x]") {
		t.Fatalf("label not refreshed: %q", s.menu.Items[0].Label)
	}

	s.Update(down)
	s.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if ctrl.Profile().HasInterest("Marketing") {
		t.Fatal("expected Marketing removed with space")
	}
	if s.menu.Selected != 1 {
		t.Fatalf("cursor moved to %d after toggle", s.menu.Selected)
	}
}

func TestToggleSettings(t *testing.T) {
	ctrl, s := newScreen(nil)
	for range 5 {
		s.Update(down)
	}
	s.Update(enter)
	if ctrl.Profile().EmailNotifications {
		t.Fatal("expected email notifications off")
	}
	s.Update(down)
	s.Update(enter)
	if !ctrl.Profile().PublicProfile {
		t.Fatal("expected public profile on")
	}
}

func TestDailyGoal(t *testing.T) {
	_, s := newScreen(&fakeLog{today: 250})
	s.Update(s.Init()())

	v := s.View(100, 50)
	for _, want := range []string{"Sam", "Joined June 2024 • Beginner Track", "Target: 500 XP / Day", "250 XP today", "50%"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDailyGoalError(t *testing.T) {
	_, s := newScreen(&fakeLog{err: errors.New("locked")})
	s.Update(s.Init()())

	if !strings.Contains(s.View(100, 50), "locked") {
		t.Fatal("expected error in view")
	}
}
