package progress

// Badge is a static achievement entry. Whether it is unlocked is derived
// from the ledger's badge list.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Badges is the full achievement catalog in display order.
var Badges = []Badge{
	{ID: "1", Name: "First Step", Description: "Complete your first lesson", Icon: "🌱"},
	{ID: "2", Name: "Quick Learner", Description: "Complete a quiz with 100% accuracy", Icon: "⚡"},
	{ID: "3", Name: "Curiosity Explorer", Description: "Try courses in 3 different domains", Icon: "🔍"},
	{ID: "4", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥"},
	{ID: "5", Name: "Polymath", Description: "Complete lessons in 5 domains", Icon: "🧠"},
	{ID: "6", Name: "Speed Demon", Description: "Complete a lesson in under 5 minutes", Icon: "🏃"},
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// BadgesByID resolves ids against the catalog, skipping unknown ones.
func BadgesByID(ids []string) []Badge {
	out := make([]Badge, 0, len(ids))
	for _, id := range ids {
		if b, ok := BadgeByID(id); ok {
			out = append(out, b)
		}
	}
	return out
}
