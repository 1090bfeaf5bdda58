package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// MultiChoice renders one quiz question. Picking an option only moves the
// highlight and reports the choice; scoring happens elsewhere.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int // -1 when unanswered
}

// OptionLabel is the letter shown before option i.
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// NewMultiChoice creates a selector with the cursor on chosen, or on the
// first option when chosen is -1.
func NewMultiChoice(question string, options []string, chosen int) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Cursor:   max(chosen, 0),
		Chosen:   chosen,
	}
}

// Update moves the cursor and returns the picked option index, or -1.
// Enter, space, a digit 1..9 or a letter a.. picks.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, -1
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, -1
	case "enter", "space":
		m.Chosen = m.Cursor
		return m, m.Chosen
	}

	if idx, ok := optionIndex(key); ok && idx < len(m.Options) {
		m.Cursor, m.Chosen = idx, idx
		return m, idx
	}
	return m, -1
}

func optionIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}

// View renders the question and its options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case i == m.Cursor:
			style = theme.Selected
		case i == m.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
