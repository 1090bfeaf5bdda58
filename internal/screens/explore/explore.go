// Package explore lists the learning domains and lets the learner start
// any topic by name.
package explore

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/ui/components"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

const maxTopicLen = 80

// ExploreScreen shows the domain catalog.
type ExploreScreen struct {
	ctrl    *shell.Controller
	domains []catalog.Domain
	menu    components.Menu
	search  components.TextInput
}

var _ screen.Screen = (*ExploreScreen)(nil)
var _ screen.KeyHintProvider = (*ExploreScreen)(nil)
var _ screen.InputCapturer = (*ExploreScreen)(nil)

// New creates an ExploreScreen.
func New(ctrl *shell.Controller) *ExploreScreen {
	s := &ExploreScreen{
		ctrl:    ctrl,
		domains: catalog.Domains(),
		search:  components.NewTextInput("Any topic, e.g. Color Theory", maxTopicLen),
	}

	prof := ctrl.Profile()
	items := make([]components.MenuItem, len(s.domains))
	for i, d := range s.domains {
		detail := "Start: " + catalog.IntroTopic(d.Name)
		if prof.HasInterest(d.Name) {
			detail = "★ " + detail
		}
		items[i] = components.MenuItem{
			Label:  d.Icon + "  " + d.Name,
			Detail: detail,
			Action: func() tea.Cmd { return router.StartLesson(catalog.IntroTopic(d.Name), d.Name) },
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *ExploreScreen) Init() tea.Cmd {
	return nil
}

func (s *ExploreScreen) Title() string {
	return "Explore"
}

// CapturesInput is true while the topic field has focus.
func (s *ExploreScreen) CapturesInput() bool {
	return s.search.Focused()
}

func (s *ExploreScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start topic"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Domain"},
		{Key: "Enter", Description: "Start intro"},
		{Key: "/", Description: "Custom topic"},
		{Key: "1-5", Description: "Tabs"},
	}
}

// Domain is the highlighted domain.
func (s *ExploreScreen) Domain() catalog.Domain {
	return s.domains[s.menu.Selected]
}

func (s *ExploreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.search.Focused() {
		if isKey {
			switch kmsg.String() {
			case "esc":
				s.search.Blur()
				return s, nil
			case "enter":
				topic := s.search.Value()
				if topic == "" {
					return s, nil
				}
				s.search.Blur()
				s.search.Reset()
				return s, router.StartLesson(topic, s.Domain().Name)
			case "up", "down":
				var cmd tea.Cmd
				s.menu, cmd = s.menu.Update(msg)
				return s, cmd
			}
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}

	if isKey {
		if kmsg.String() == "/" {
			return s, s.search.Focus()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExploreScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Explore"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Pick a domain to begin, or type any topic you're curious about."))
	b.WriteString("\n\n")

	b.WriteString(s.search.View(min(width-2, 60)))
	b.WriteString("\n")
	if s.search.Focused() {
		d := s.Domain()
		b.WriteString(theme.Hint.Render("Topic will be taught in ") +
			theme.Tint(d.Color).Render(d.Icon+" "+d.Name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(components.SectionTitle("Domains"))
	b.WriteString("\n")
	b.WriteString(s.menu.View(true))
	return b.String()
}
