// Package progress is the learner's ledger: points, level, streak,
// completed lessons and badges.
package progress

import (
	"math"
	"slices"

	"github.com/mechdyane/mechdyane/internal/catalog"
)

// PointsPerLevel is the XP span of one level.
const PointsPerLevel = 1000

// defaultCourseLessons is used when the course does not say how many
// lessons it has.
const defaultCourseLessons = 10

// Progress is a snapshot of the ledger.
type Progress struct {
	Level            int
	Points           int
	Badges           []Badge
	CompletedLessons []string
	Streak           int
	Course           catalog.Course
}

// Level derives the level from cumulative points.
func Level(points int) int {
	return int(math.Floor(float64(points)/PointsPerLevel)) + 1
}

// LevelProgress is how far through the current level the learner is, in [0,1).
func (p Progress) LevelProgress() float64 {
	rem := p.Points % PointsPerLevel
	if rem < 0 {
		rem += PointsPerLevel
	}
	return float64(rem) / PointsPerLevel
}

// NextLevel is the level after the current one.
func (p Progress) NextLevel() int { return p.Level + 1 }

// CoursePercent is the active course completion, capped at 100.
func (p Progress) CoursePercent() int {
	total := p.Course.TotalLessons
	if total <= 0 {
		total = defaultCourseLessons
	}
	pct := int(math.Round(float64(len(p.CompletedLessons)) / float64(total) * 100))
	return min(pct, 100)
}

// CourseTotal is the lesson count shown for the course.
func (p Progress) CourseTotal() int {
	if p.Course.TotalLessons <= 0 {
		return defaultCourseLessons
	}
	return p.Course.TotalLessons
}

// Unlocked reports whether the badge id is in the ledger.
func (p Progress) Unlocked(badgeID string) bool {
	return slices.ContainsFunc(p.Badges, func(b Badge) bool { return b.ID == badgeID })
}

// TopBadges returns up to n unlocked badges.
func (p Progress) TopBadges(n int) []Badge {
	if n > len(p.Badges) {
		n = len(p.Badges)
	}
	return p.Badges[:max(n, 0)]
}

// Ledger owns the learner's progress. Completion is its only mutation and
// callers must apply each finished quiz once.
type Ledger struct {
	p Progress
}

// NewLedger starts a ledger from seed. The level is derived from points.
func NewLedger(seed Progress) *Ledger {
	p := seed
	p.Badges = slices.Clone(seed.Badges)
	p.CompletedLessons = slices.Clone(seed.CompletedLessons)
	p.Level = Level(p.Points)
	return &Ledger{p: p}
}

// Seed is the starting state of a new learner.
func Seed() Progress {
	return Progress{
		Points:           450,
		Level:            Level(450),
		Badges:           slices.Clone(Badges[:2]),
		CompletedLessons: []string{"What is Marketing?", "Digital Platforms"},
		Streak:           5,
		Course:           catalog.SeedCourse,
	}
}

// ApplyCompletion adds xp and recomputes the level. A non-empty topic is
// appended to the completed lessons.
func (l *Ledger) ApplyCompletion(xp int, topic string) Progress {
	l.p.Points += xp
	l.p.Level = Level(l.p.Points)
	if topic != "" {
		l.p.CompletedLessons = append(l.p.CompletedLessons, topic)
	}
	return l.Snapshot()
}

// Snapshot returns a copy of the current progress.
func (l *Ledger) Snapshot() Progress {
	p := l.p
	p.Badges = slices.Clone(l.p.Badges)
	p.CompletedLessons = slices.Clone(l.p.CompletedLessons)
	return p
}
