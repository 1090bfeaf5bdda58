package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with the dashboard styling. It starts
// blurred.
type TextInput struct {
	Model    textinput.Model
	MaxWidth int
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "⌕ "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{
		Model:    ti,
		MaxWidth: maxWidth,
	}
}

// Focus gives the input the keyboard.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur releases the keyboard.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has the keyboard.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input inside a card.
func (t TextInput) View(width int) string {
	style := theme.Card
	if t.Focused() {
		style = theme.CardFocused
	}
	return style.Width(width).Render(t.Model.View())
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
}
