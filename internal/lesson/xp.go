package lesson

import "math"

const (
	baseXP       = 50
	perfectBonus = 50
)

// XP converts a quiz score into experience points:
// round(score/total*100 + 50), plus 50 more for a perfect run.
// An empty quiz earns the base 50 and no bonus.
func XP(score, total int) int {
	if total <= 0 {
		return baseXP
	}
	xp := float64(score)/float64(total)*100 + baseXP
	if score == total {
		xp += perfectBonus
	}
	return int(math.Round(xp))
}
