package progress

import (
	"slices"
	"strings"
)

// Entry is one leaderboard row.
type Entry struct {
	Name   string
	Points int
	Level  int
	Me     bool
}

var rivals = []Entry{
	{Name: "Alex Rivera", Points: 15400, Level: 16},
	{Name: "Sarah Chen", Points: 12850, Level: 13},
	{Name: "Marcus Todd", Points: 9200, Level: 10},
	{Name: "Elena Gomez", Points: 8100, Level: 9},
}

// Leaderboard ranks the learner among the static rivals by points,
// highest first. Ties keep the learner below existing rivals.
func Leaderboard(name string, p Progress) []Entry {
	if strings.TrimSpace(name) == "" {
		name = "You"
	}
	board := append(slices.Clone(rivals), Entry{Name: name, Points: p.Points, Level: p.Level, Me: true})
	slices.SortStableFunc(board, func(a, b Entry) int { return b.Points - a.Points })
	return board
}

// Rank returns the learner's 1-based position on the board.
func Rank(board []Entry) int {
	for i, e := range board {
		if e.Me {
			return i + 1
		}
	}
	return 0
}
