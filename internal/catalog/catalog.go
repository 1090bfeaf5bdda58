// Package catalog holds the static learning catalog: domains, starter
// recommendations and the seeded course.
package catalog

import "strings"

// Domain is a subject area lessons are scoped to.
type Domain struct {
	Name  string
	Icon  string
	Color string // lipgloss color used for cards
}

var domains = []Domain{
	{Name: "Computer Studies", Icon: "💻", Color: "#3B82F6"},
	{Name: "Marketing", Icon: "📈", Color: "#F97316"},
	{Name: "Healthcare", Icon: "🏥", Color: "#10B981"},
	{Name: "Finance", Icon: "💰", Color: "#A855F7"},
	{Name: "Design", Icon: "🎨", Color: "#EC4899"},
}

// Domains returns all domains in display order.
func Domains() []Domain {
	return append([]Domain(nil), domains...)
}

// DomainNames returns the domain names in display order.
func DomainNames() []string {
	names := make([]string, len(domains))
	for i, d := range domains {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a domain by name, ignoring case.
func Lookup(name string) (Domain, bool) {
	for _, d := range domains {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Domain{}, false
}

// IntroTopic is the topic Explore starts for a domain.
func IntroTopic(domain string) string {
	return "Introduction to " + domain
}

// Recommendation pairs a suggested topic with the domain it is taught in.
type Recommendation struct {
	Topic  string
	Domain Domain
}

// DefaultTopics seed the recommendation cards before the provider has
// been asked.
var DefaultTopics = []string{
	"Introduction to Python Basics",
	"Social Media Marketing Strategies",
	"Anatomy Fundamentals",
	"Understanding Stock Markets",
	"UI/UX Design Principles",
}

// Recommendations pairs topic i with domain i modulo the domain count.
func Recommendations(topics []string) []Recommendation {
	out := make([]Recommendation, len(topics))
	for i, t := range topics {
		out[i] = Recommendation{Topic: t, Domain: domains[i%len(domains)]}
	}
	return out
}

// ContinueTopic and ContinueDomain are what "Continue Course" starts.
const (
	ContinueTopic  = "Market Research Basics"
	ContinueDomain = "Marketing"
)

// SeedCourse is the course a new learner is enrolled in.
var SeedCourse = Course{
	ID:           "course_1",
	Title:        "Fundamentals of Digital Marketing",
	TotalLessons: 12,
}

// Course describes the learner's active course.
type Course struct {
	ID           string
	Title        string
	TotalLessons int
}

// Active reports whether the course is set.
func (c Course) Active() bool {
	return c.ID != "" && c.Title != ""
}
