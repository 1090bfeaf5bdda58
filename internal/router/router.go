// Package router keeps the active screen in step with the shell's tab and
// turns navigation and fetch messages into controller calls.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
)

// NavigateMsg requests a switch to a sidebar tab.
type NavigateMsg struct {
	Tab shell.Tab
}

// StartLessonMsg opens the learning view for a topic.
type StartLessonMsg struct {
	Topic  string
	Domain string
}

// RetryLessonMsg re-requests an unavailable lesson.
type RetryLessonMsg struct{}

// RefreshRecommendationsMsg asks the provider for new suggestions.
type RefreshRecommendationsMsg struct{}

// Navigate returns a command emitting NavigateMsg.
func Navigate(tab shell.Tab) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Tab: tab} }
}

// StartLesson returns a command emitting StartLessonMsg.
func StartLesson(topic, domain string) tea.Cmd {
	return func() tea.Msg { return StartLessonMsg{Topic: topic, Domain: domain} }
}

// Factory builds the screen for a tab.
type Factory func(tab shell.Tab, ctrl *shell.Controller) screen.Screen

// Router holds the screen for the controller's current tab. Screens are
// rebuilt on every switch.
type Router struct {
	ctrl   *shell.Controller
	build  Factory
	active screen.Screen
}

// New creates a Router showing the controller's current tab.
func New(ctrl *shell.Controller, build Factory) *Router {
	return &Router{
		ctrl:   ctrl,
		build:  build,
		active: build(ctrl.Tab(), ctrl),
	}
}

// Init runs the first screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Tab is the controller's current tab.
func (r *Router) Tab() shell.Tab {
	return r.ctrl.Tab()
}

// Navigate switches tabs. Unknown tabs are ignored.
func (r *Router) Navigate(tab shell.Tab) tea.Cmd {
	if err := r.ctrl.Navigate(string(tab)); err != nil {
		return nil
	}
	return r.replace(r.build(tab, r.ctrl))
}

func (r *Router) replace(s screen.Screen) tea.Cmd {
	r.active = s
	return s.Init()
}

// Update handles routing messages and forwards everything else to the
// active screen. Fetch results are delivered to the controller first;
// stale ones stop there.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NavigateMsg:
		return r.Navigate(msg.Tab)

	case StartLessonMsg:
		fetch := r.ctrl.StartLesson(msg.Topic, msg.Domain)
		return tea.Batch(r.replace(r.build(shell.TabLearning, r.ctrl)), runLesson(fetch))

	case RetryLessonMsg:
		fetch, err := r.ctrl.RetryLesson()
		if err != nil {
			return nil
		}
		return tea.Batch(r.forward(msg), runLesson(fetch))

	case RefreshRecommendationsMsg:
		if r.ctrl.RecommendBusy() {
			return nil
		}
		fetch := r.ctrl.RefreshRecommendations()
		return tea.Batch(r.forward(msg), func() tea.Msg { return fetch() })

	case shell.LessonLoaded:
		if !r.ctrl.DeliverLesson(msg) {
			return nil
		}

	case shell.RecommendLoaded:
		if !r.ctrl.DeliverRecommendations(msg) {
			return nil
		}
	}
	return r.forward(msg)
}

func (r *Router) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

func runLesson(fetch shell.LessonFetch) tea.Cmd {
	return func() tea.Msg { return fetch() }
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
