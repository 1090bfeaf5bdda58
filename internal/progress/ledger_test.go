package progress

import (
	"testing"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{450, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2500, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.points), "points=%d", tt.points)
	}
}

func TestSeed(t *testing.T) {
	s := Seed()
	assert.Equal(t, 450, s.Points)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 5, s.Streak)
	assert.Equal(t, []string{"What is Marketing?", "Digital Platforms"}, s.CompletedLessons)
	assert.True(t, s.Unlocked("1"))
	assert.True(t, s.Unlocked("2"))
	assert.False(t, s.Unlocked("3"))
	assert.Equal(t, catalog.SeedCourse, s.Course)
}

func TestApplyCompletion(t *testing.T) {
	l := NewLedger(Seed())

	p := l.ApplyCompletion(200, "Market Research Basics")
	assert.Equal(t, 650, p.Points)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, "Market Research Basics", p.CompletedLessons[2])

	p = l.ApplyCompletion(350, "Budgeting")
	assert.Equal(t, 1000, p.Points)
	assert.Equal(t, 2, p.Level)
	assert.Len(t, p.CompletedLessons, 4)
}

func TestApplyCompletionWithoutTopic(t *testing.T) {
	l := NewLedger(Seed())
	p := l.ApplyCompletion(50, "")
	assert.Equal(t, 500, p.Points)
	assert.Len(t, p.CompletedLessons, 2)
}

func TestNewLedgerDerivesLevel(t *testing.T) {
	l := NewLedger(Progress{Points: 3200, Level: 99})
	assert.Equal(t, 4, l.Snapshot().Level)
}

func TestSnapshotIsACopy(t *testing.T) {
	l := NewLedger(Seed())
	snap := l.Snapshot()
	snap.CompletedLessons[0] = "changed"
	snap.Badges = nil

	again := l.Snapshot()
	assert.Equal(t, "What is Marketing?", again.CompletedLessons[0])
	assert.Len(t, again.Badges, 2)
}

func TestLevelProgress(t *testing.T) {
	assert.InDelta(t, 0.45, Progress{Points: 450}.LevelProgress(), 1e-9)
	assert.InDelta(t, 0.0, Progress{Points: 2000}.LevelProgress(), 1e-9)
	assert.Equal(t, 3, Progress{Level: 2}.NextLevel())
}

func TestCoursePercent(t *testing.T) {
	p := Seed()
	assert.Equal(t, 17, p.CoursePercent())

	p.Course.TotalLessons = 0
	assert.Equal(t, 20, p.CoursePercent())
	assert.Equal(t, 10, p.CourseTotal())

	p.CompletedLessons = make([]string, 15)
	assert.Equal(t, 100, p.CoursePercent())
}

func TestTopBadges(t *testing.T) {
	p := Progress{Badges: BadgesByID([]string{"1", "2", "3", "4", "5"})}
	require.Len(t, p.TopBadges(4), 4)
	assert.Equal(t, "Week Warrior", p.TopBadges(4)[3].Name)

	assert.Empty(t, Progress{}.TopBadges(4))
}

func TestBadgeCatalog(t *testing.T) {
	require.Len(t, Badges, 6)
	b, ok := BadgeByID("6")
	require.True(t, ok)
	assert.Equal(t, "Speed Demon", b.Name)

	_, ok = BadgeByID("42")
	assert.False(t, ok)
	assert.Len(t, BadgesByID([]string{"1", "42"}), 1)
}

func TestLeaderboard(t *testing.T) {
	board := Leaderboard("", Seed())
	require.Len(t, board, 5)
	assert.Equal(t, "Alex Rivera", board[0].Name)
	assert.Equal(t, 5, Rank(board))
	assert.Equal(t, "You", board[4].Name)

	board = Leaderboard("Sam", Progress{Points: 10000, Level: 11})
	assert.Equal(t, 3, Rank(board))
	assert.Equal(t, "Sam", board[2].Name)

	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Points, board[i].Points)
	}
}
