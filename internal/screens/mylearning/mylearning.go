// Package mylearning shows the active course and the completed lessons.
package mylearning

import (
	"fmt"
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

// MyLearningScreen is the learning path tab.
type MyLearningScreen struct {
	ctrl   *shell.Controller
	scroll int
}

var _ screen.Screen = (*MyLearningScreen)(nil)
var _ screen.KeyHintProvider = (*MyLearningScreen)(nil)

// New creates a MyLearningScreen.
func New(ctrl *shell.Controller) *MyLearningScreen {
	return &MyLearningScreen{ctrl: ctrl}
}

func (s *MyLearningScreen) Init() tea.Cmd { return nil }

func (s *MyLearningScreen) Title() string { return "My Learning" }

func (s *MyLearningScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Scroll"}}
	if s.ctrl.Progress().Course.Active() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue course"})
	}
	return append(hints, layout.KeyHint{Key: "1-5", Description: "Tabs"})
}

func (s *MyLearningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		if s.scroll < len(s.ctrl.Progress().CompletedLessons)-1 {
			s.scroll++
		}
	case "enter":
		if s.ctrl.Progress().Course.Active() {
			return s, router.StartLesson(catalog.ContinueTopic, catalog.ContinueDomain)
		}
	}
	return s, nil
}

func (s *MyLearningScreen) View(width, height int) string {
	p := s.ctrl.Progress()
	var b strings.Builder

	b.WriteString(theme.Title.Render("My Learning Path"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Pick up exactly where you left off."))
	b.WriteString("\n\n")

	b.WriteString(components.SectionTitle("⏱  Currently Learning"))
	b.WriteString("\n")
	if p.Course.Active() {
		tag := catalog.ContinueDomain
		if d, ok := catalog.Lookup(tag); ok {
			tag = d.Icon + " " + d.Name
		}
		bar := components.NewProgressBar("", float64(p.CoursePercent())/100, true, width-6)
		body := theme.Selected.Render(strings.ToUpper(tag)) + "\n" +
			theme.Heading.Render(p.Course.Title) + "\n" +
			theme.Subtitle.Render(fmt.Sprintf("✔ %d Lessons Done  •  %d Total Lessons", len(p.CompletedLessons), p.CourseTotal())) + "\n" +
			bar.View() + "\n\n" +
			components.NewButton("Enter", "Continue Course", true).View()
		b.WriteString(components.FocusCard(body, width-2, true))
	} else {
		b.WriteString(components.Card(theme.Hint.Render("No active courses. Start one from the Explore tab!"), width-2))
	}
	b.WriteString("\n\n")

	b.WriteString(components.SectionTitle("✅ Completed Content"))
	b.WriteString("\n")
	if len(p.CompletedLessons) == 0 {
		b.WriteString(theme.Hint.Render("Finish your first lesson to see it here!"))
		return b.String()
	}

	used := strings.Count(b.String(), "\n") + 1
	visible := max((height-used)/2, 1)
	start := min(s.scroll, len(p.CompletedLessons)-1)
	end := min(start+visible, len(p.CompletedLessons))
	for _, title := range p.CompletedLessons[start:end] {
		b.WriteString(theme.Correct.Render("  ✔ ") + theme.Body.Render(title))
		b.WriteString(theme.Subtitle.Render("   MASTERED"))
		b.WriteString("\n\n")
	}
	if end < len(p.CompletedLessons) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  …and %d more", len(p.CompletedLessons)-end)))
	}
	return b.String()
}
