// Package app is the root Bubble Tea model: header, sidebar, footer and
// the global keys around the routed tab screens.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/screens/achievements"
	"github.com/mechdyane/mechdyane/internal/screens/dashboard"
	"github.com/mechdyane/mechdyane/internal/screens/explore"
	"github.com/mechdyane/mechdyane/internal/screens/learning"
	"github.com/mechdyane/mechdyane/internal/screens/mylearning"
	"github.com/mechdyane/mechdyane/internal/screens/profile"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
)

// Options holds dependencies for the TUI.
type Options struct {
	Controller *shell.Controller
	Logger     *zap.Logger
}

// BuildScreen maps a tab to its screen.
func BuildScreen(tab shell.Tab, ctrl *shell.Controller) screen.Screen {
	switch tab {
	case shell.TabExplore:
		return explore.New(ctrl)
	case shell.TabMyLearning:
		return mylearning.New(ctrl)
	case shell.TabAchievements:
		return achievements.New(ctrl)
	case shell.TabProfile:
		return profile.New(ctrl)
	case shell.TabLearning:
		return learning.New(ctrl)
	}
	return dashboard.New(ctrl)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *shell.Controller
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// NewAppModel creates the model showing the controller's current tab.
func NewAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return AppModel{
		ctrl:   opts.Controller,
		router: router.New(opts.Controller, BuildScreen),
		log:    logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.globalKey(msg.String()); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// globalKey handles keys that work on every tab. Tab shortcuts are off in
// the learning view and while a screen captures input.
func (m AppModel) globalKey(key string) (tea.Cmd, bool) {
	if key == "ctrl+c" {
		m.ctrl.Close()
		return tea.Quit, true
	}

	if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
		return nil, false
	}

	tab := m.router.Tab()
	if tab == shell.TabLearning {
		if key == "esc" {
			m.log.Debug("leaving lesson")
			return m.router.Navigate(shell.TabDashboard), true
		}
		return nil, false
	}

	switch key {
	case "1", "2", "3", "4", "5":
		return m.router.Navigate(shell.Tabs[key[0]-'1']), true
	case "tab":
		return m.router.Navigate(shell.Tabs[(tabIndex(tab)+1)%len(shell.Tabs)]), true
	case "shift+tab":
		return m.router.Navigate(shell.Tabs[(tabIndex(tab)-1+len(shell.Tabs))%len(shell.Tabs)]), true
	}
	return nil, false
}

func tabIndex(tab shell.Tab) int {
	for i, t := range shell.Tabs {
		if t == tab {
			return i
		}
	}
	return 0
}

func (m AppModel) sidebarItems() []layout.SidebarItem {
	current := m.router.Tab()
	items := make([]layout.SidebarItem, 0, len(shell.Tabs)+1)
	for i, t := range shell.Tabs {
		items = append(items, layout.SidebarItem{
			Key:    fmt.Sprintf("%d", i+1),
			Label:  t.Label(),
			Active: t == current,
		})
	}
	if current == shell.TabLearning {
		items = append(items, layout.SidebarItem{Key: "▸", Label: shell.TabLearning.Label(), Active: true})
	}
	return items
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	p := m.ctrl.Progress()
	header := layout.RenderHeader(active.Title(), layout.HeaderStats{
		Streak: p.Streak,
		Points: p.Points,
		Level:  p.Level,
	}, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	sidebar := layout.RenderSidebar(m.sidebarItems(), contentHeight)

	// Main column padding takes two columns.
	content := m.router.View(layout.MainWidth(m.width)-2, contentHeight)
	return layout.RenderFrame(header, sidebar, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	opts.Controller.Close()
	if err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
