package shell

import (
	"errors"
	"fmt"
)

// Tab identifies a top-level view.
type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabExplore      Tab = "explore"
	TabMyLearning   Tab = "my-learning"
	TabAchievements Tab = "achievements"
	TabProfile      Tab = "profile"

	// TabLearning is entered through StartLesson only.
	TabLearning Tab = "learning"
)

// Tabs are the navigable tabs in sidebar order.
var Tabs = []Tab{TabDashboard, TabExplore, TabMyLearning, TabAchievements, TabProfile}

var ErrUnknownTab = errors.New("unknown tab")

// ParseTab validates a navigation id.
func ParseTab(id string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == id {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, id)
}

// Label is the sidebar text for the tab.
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabExplore:
		return "Explore"
	case TabMyLearning:
		return "My Learning"
	case TabAchievements:
		return "Achievements"
	case TabProfile:
		return "Profile"
	case TabLearning:
		return "Learning"
	}
	return string(t)
}
