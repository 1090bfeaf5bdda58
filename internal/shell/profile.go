package shell

import (
	"slices"
	"strings"

	"github.com/mechdyane/mechdyane/internal/catalog"
)

// Profile is the learner's display settings. Changes live in memory only.
type Profile struct {
	Name               string
	Joined             string
	Track              string
	Interests          []string
	DailyGoalXP        int
	EmailNotifications bool
	PublicProfile      bool
}

// HasInterest reports whether domain is one of the learner's interests,
// ignoring case.
func (p Profile) HasInterest(domain string) bool {
	return p.interestIndex(domain) >= 0
}

func (p Profile) interestIndex(domain string) int {
	return slices.IndexFunc(p.Interests, func(s string) bool {
		return strings.EqualFold(s, domain)
	})
}

// ToggleInterest adds or removes a domain from the learner's interests.
func (c *Controller) ToggleInterest(domain string) error {
	d, ok := catalog.Lookup(domain)
	if !ok {
		return ErrUnknownDomain
	}
	if i := c.profile.interestIndex(d.Name); i >= 0 {
		c.profile.Interests = slices.Delete(c.profile.Interests, i, i+1)
		return nil
	}
	c.profile.Interests = append(c.profile.Interests, d.Name)
	return nil
}

func (c *Controller) ToggleEmailNotifications() {
	c.profile.EmailNotifications = !c.profile.EmailNotifications
}

func (c *Controller) TogglePublicProfile() {
	c.profile.PublicProfile = !c.profile.PublicProfile
}

// Profile returns a copy of the learner profile.
func (c *Controller) Profile() Profile {
	p := c.profile
	p.Interests = slices.Clone(c.profile.Interests)
	return p
}
