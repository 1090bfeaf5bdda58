package achievements

import (
	"strings"
	"testing"

	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/mechdyane/mechdyane/internal/shell"
)

func newScreen(seed progress.Progress, name string) *AchievementsScreen {
	return New(shell.New(shell.Options{
		Provider: content.NewFake(),
		Ledger:   progress.NewLedger(seed),
		Profile:  shell.Profile{Name: name},
	}))
}

func TestViewShowsBadgesAndBoard(t *testing.T) {
	s := newScreen(progress.Seed(), "Sam")
	v := s.View(100, 60)

	for _, want := range []string{"2 of 6 unlocked", "First Step", "🔒 Polymath", "Alex Rivera", "15,400", "Sam", "You are #5 of 5", "Unlock Pro Rewards"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestProRewardsUnlocked(t *testing.T) {
	seed := progress.Seed()
	seed.Points = 13000
	s := newScreen(seed, "Sam")

	v := s.View(100, 60)
	if !strings.Contains(v, "Pro Rewards unlocked") {
		t.Fatal("expected pro rewards at level 14")
	}
	if !strings.Contains(v, "You are #2 of 5") {
		t.Fatal("expected rank 2 with 13,000 points")
	}
}

func TestViewBoardMarksLearner(t *testing.T) {
	out := viewBoard(progress.Leaderboard("Sam", progress.Seed()))
	if !strings.Contains(out, "(you)") {
		t.Fatalf("expected the learner row marked:\n%s", out)
	}
}
