package mylearning

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/shell"
)

func newScreen(seed progress.Progress) *MyLearningScreen {
	return New(shell.New(shell.Options{
		Provider: content.NewFake(),
		Ledger:   progress.NewLedger(seed),
	}))
}

func TestContinueCourse(t *testing.T) {
	s := newScreen(progress.Seed())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.StartLessonMsg)
	if !ok {
		t.Fatalf("expected StartLessonMsg, got %#v", cmd())
	}
	if msg.Topic != catalog.ContinueTopic || msg.Domain != catalog.ContinueDomain {
		t.Fatalf("start = %+v", msg)
	}
}

func TestViewListsCompletedLessons(t *testing.T) {
	seed := progress.Seed()
	s := newScreen(seed)

	v := s.View(100, 40)
	if !strings.Contains(v, seed.Course.Title) {
		t.Fatal("missing course title")
	}
	for _, title := range seed.CompletedLessons {
		if !strings.Contains(v, title) {
			t.Errorf("missing completed lesson %q", title)
		}
	}
}

func TestNoCourse(t *testing.T) {
	seed := progress.Seed()
	seed.Course = catalog.Course{}
	seed.CompletedLessons = nil
	s := newScreen(seed)

	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected enter to do nothing without a course")
	}
	v := s.View(100, 40)
	if !strings.Contains(v, "No active courses") || !strings.Contains(v, "Finish your first lesson") {
		t.Fatalf("unexpected empty view:\n%s", v)
	}
}
