// Package learning is the lesson view: reading the generated material,
// taking the quiz and reviewing the results.
package learning

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mechdyane/mechdyane/internal/content"
	"github.com/mechdyane/mechdyane/internal/lesson"
	"github.com/mechdyane/mechdyane/internal/router"
	"github.com/mechdyane/mechdyane/internal/screen"
	"github.com/mechdyane/mechdyane/internal/shell"
	"github.com/mechdyane/mechdyane/internal/ui/components"
	"github.com/mechdyane/mechdyane/internal/ui/layout"
	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// LearningScreen renders the controller's active lesson session.
type LearningScreen struct {
	ctrl    *shell.Controller
	spinner spinner.Model

	scroll  int
	current int // quiz question index
	choice  components.MultiChoice
	hint    string
}

var _ screen.Screen = (*LearningScreen)(nil)
var _ screen.KeyHintProvider = (*LearningScreen)(nil)

// New creates a LearningScreen for ctrl's session.
func New(ctrl *shell.Controller) *LearningScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &LearningScreen{ctrl: ctrl, spinner: sp}
}

func (s *LearningScreen) Init() tea.Cmd {
	return s.spinner.Tick
}

func (s *LearningScreen) Title() string {
	if sess := s.ctrl.Session(); sess != nil {
		return sess.Topic
	}
	return "Learning"
}

func (s *LearningScreen) state() lesson.State {
	if sess := s.ctrl.Session(); sess != nil {
		return sess.State()
	}
	return lesson.Unavailable
}

func (s *LearningScreen) KeyHints() []layout.KeyHint {
	switch s.state() {
	case lesson.Reading:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Dashboard"},
		}
	case lesson.Quiz:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "R", Description: "Review lesson"},
			{Key: "S", Description: "Submit"},
		}
	case lesson.Results:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Dashboard"},
		}
	case lesson.Unavailable:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Dashboard"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
}

func (s *LearningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.state() != lesson.Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case shell.LessonLoaded:
		s.scroll = 0
		return s, nil

	case router.RetryLessonMsg:
		return s, s.spinner.Tick

	case tea.KeyMsg:
		sess := s.ctrl.Session()
		if sess == nil {
			return s, nil
		}
		switch sess.State() {
		case lesson.Reading:
			return s, s.updateReading(sess, msg.String())
		case lesson.Quiz:
			return s, s.updateQuiz(sess, msg)
		case lesson.Results:
			return s, s.updateResults(msg.String())
		case lesson.Unavailable:
			if msg.String() == "r" {
				return s, func() tea.Msg { return router.RetryLessonMsg{} }
			}
		}
	}
	return s, nil
}

func (s *LearningScreen) updateReading(sess *lesson.Session, key string) tea.Cmd {
	switch key {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		s.scroll++
	case "enter":
		if err := sess.StartQuiz(); err == nil {
			s.current = 0
			s.hint = ""
			s.syncChoice(sess)
		}
	}
	return nil
}

func (s *LearningScreen) updateQuiz(sess *lesson.Session, msg tea.KeyMsg) tea.Cmd {
	quiz := sess.Lesson().Quiz
	switch msg.String() {
	case "left":
		if s.current > 0 {
			s.current--
			s.syncChoice(sess)
		}
		return nil
	case "right":
		if s.current < len(quiz)-1 {
			s.current++
			s.syncChoice(sess)
		}
		return nil
	case "r":
		if err := sess.Review(); err == nil {
			s.scroll = 0
			s.hint = ""
		}
		return nil
	case "s":
		if !sess.CanSubmit() {
			s.hint = fmt.Sprintf("Answer all %d questions to submit.", len(quiz))
			return nil
		}
		if _, err := sess.Submit(); err == nil {
			s.scroll = 0
			s.hint = ""
		}
		return nil
	}

	var picked int
	s.choice, picked = s.choice.Update(msg)
	if picked < 0 {
		return nil
	}
	if err := sess.Answer(quiz[s.current].ID, picked); err != nil {
		s.hint = err.Error()
		return nil
	}
	s.hint = ""
	if s.current < len(quiz)-1 {
		s.current++
		s.syncChoice(sess)
	}
	return nil
}

func (s *LearningScreen) updateResults(key string) tea.Cmd {
	switch key {
	case "up", "k":
		s.scroll = max(s.scroll-1, 0)
	case "down", "j":
		s.scroll++
	case "enter":
		return router.Navigate(shell.TabDashboard)
	}
	return nil
}

func (s *LearningScreen) syncChoice(sess *lesson.Session) {
	q := sess.Lesson().Quiz[s.current]
	chosen := -1
	if i, ok := sess.Selected(q.ID); ok {
		chosen = i
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options, chosen)
}

func (s *LearningScreen) View(width, height int) string {
	sess := s.ctrl.Session()
	if sess == nil {
		return theme.Hint.Render("\n  No lesson in progress.")
	}

	bar := components.NewProgressBar("", sess.Progress(), false, width-2)
	top := bar.View() + "\n\n"
	bodyHeight := max(height-lipgloss.Height(top), 1)

	var body string
	switch sess.State() {
	case lesson.Loading:
		body = s.viewLoading(sess, width)
	case lesson.Reading:
		body = s.viewReading(sess, width, bodyHeight)
	case lesson.Quiz:
		body = s.viewQuiz(sess, width)
	case lesson.Results:
		body = s.viewResults(sess, width, bodyHeight)
	case lesson.Unavailable:
		body = s.viewUnavailable(sess, width)
	}
	return top + body
}

func (s *LearningScreen) viewLoading(sess *lesson.Session, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		"\n\n" + s.spinner.View() + " " +
			theme.Body.Render(fmt.Sprintf("Preparing your lesson on %s...", sess.Topic)) +
			"\n\n" + theme.Hint.Render("The AI tutor is writing it for your level."))
}

func (s *LearningScreen) viewReading(sess *lesson.Session, width, height int) string {
	l := sess.Lesson()
	head := theme.Subtitle.Render(strings.ToUpper(l.Domain)) + "  " +
		difficultyStyle(l.Difficulty).Render(string(l.Difficulty)) + "\n" +
		theme.Title.Render(l.Title) + "\n"
	if l.Description != "" {
		head += theme.Hint.Render(l.Description) + "\n"
	}
	head += "\n"
	foot := "\n" + components.NewButton("Enter", "Take the quiz", true).View()

	lines := components.RenderMarkdown(l.Content, width-2)
	visible := max(height-lipgloss.Height(head)-lipgloss.Height(foot), 1)
	s.scroll = min(s.scroll, max(len(lines)-visible, 0))
	end := min(s.scroll+visible, len(lines))

	return head + strings.Join(lines[s.scroll:end], "\n") + "\n" + foot
}

func (s *LearningScreen) viewQuiz(sess *lesson.Session, width int) string {
	quiz := sess.Lesson().Quiz
	var b strings.Builder

	b.WriteString(theme.Heading.Render(fmt.Sprintf("Question %d of %d", s.current+1, len(quiz))))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %d answered", sess.Answered())))
	b.WriteString("\n\n")

	var dots []string
	for i, q := range quiz {
		_, answered := sess.Selected(q.ID)
		switch {
		case i == s.current:
			dots = append(dots, theme.Selected.Render("◆"))
		case answered:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"))
		default:
			dots = append(dots, theme.Locked.Render("○"))
		}
	}
	b.WriteString(strings.Join(dots, " "))
	b.WriteString("\n\n")

	b.WriteString(components.Card(s.choice.View(width-6), width-2))
	b.WriteString("\n\n")

	b.WriteString(components.NewButton("S", "Submit answers", sess.CanSubmit()).View())
	if s.hint != "" {
		b.WriteString("\n\n" + theme.Notice.Render(s.hint))
	}
	return b.String()
}

func (s *LearningScreen) viewResults(sess *lesson.Session, width, height int) string {
	r, _ := sess.Result()

	head := theme.Title.Render("Lesson complete!") + "\n\n" +
		components.Row(
			components.StatCard("✔", "Score", fmt.Sprintf("%d / %d", r.Score, r.Total), theme.Success, 18),
			components.StatCard("⚡", "Earned", fmt.Sprintf("+%d XP", r.XP), theme.Primary, 18),
		) + "\n"
	if r.Perfect() {
		head += theme.Correct.Render("Perfect score! +50 bonus XP") + "\n"
	}
	head += "\n"

	var lines []string
	for i, item := range sess.ReviewItems() {
		mark := theme.Correct.Render("✓")
		if !item.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s %d. %s", mark, i+1, theme.Body.Render(item.Question.Text)))
		lines = append(lines, theme.Subtitle.Render("     Your answer: "+item.ChosenText))
		if !item.Correct {
			correct := item.Question.Options[item.Question.CorrectIndex]
			lines = append(lines, theme.Correct.Render("     Correct: "+correct))
		}
		if item.Question.Explanation != "" {
			for _, w := range components.RenderMarkdown(item.Question.Explanation, width-8) {
				lines = append(lines, "     "+theme.Hint.Render(w))
			}
		}
		lines = append(lines, "")
	}

	foot := components.NewButton("Enter", "Back to dashboard", true).View()
	visible := max(height-lipgloss.Height(head)-lipgloss.Height(foot), 1)
	s.scroll = min(s.scroll, max(len(lines)-visible, 0))
	end := min(s.scroll+visible, len(lines))

	return head + strings.Join(lines[s.scroll:end], "\n") + "\n" + foot
}

func (s *LearningScreen) viewUnavailable(sess *lesson.Session, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		"\n\n" + theme.Incorrect.Render("Lesson unavailable") + "\n\n" +
			theme.Body.Render(unavailableReason(sess.Err())) + "\n\n" +
			components.NewButton("R", "Try again", true).View())
}

func unavailableReason(err error) string {
	var (
		timeout   *content.ProviderTimeoutError
		malformed *content.MalformedContentError
	)
	switch {
	case errors.Is(err, content.ErrNotConfigured):
		return "No AI provider is configured. Set an API key and try again."
	case errors.As(err, &timeout):
		return "The AI tutor took too long to answer."
	case errors.As(err, &malformed):
		return "The AI tutor returned a lesson we couldn't use."
	case err != nil:
		return "We couldn't generate this lesson right now."
	}
	return "This lesson isn't available."
}

func difficultyStyle(d content.Difficulty) lipgloss.Style {
	switch d {
	case content.Hard:
		return theme.Incorrect
	case content.Medium:
		return lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	}
	return theme.Correct
}
