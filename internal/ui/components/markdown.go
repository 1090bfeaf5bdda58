package components

import (
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mitchellh/go-wordwrap"

	"github.com/mechdyane/mechdyane/internal/ui/theme"
)

var (
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codeRe = regexp.MustCompile("`([^`]+)`")
)

// RenderMarkdown turns lesson markdown into styled, wrapped terminal
// lines. It covers what lessons use: headings, bullet and numbered lists,
// block quotes, bold and inline code.
func RenderMarkdown(src string, width int) []string {
	width = max(width, 20)
	var out []string

	for _, raw := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasPrefix(trimmed, "```"):
			// fences carry no content of their own
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			text := strings.TrimSpace(trimmed[level:])
			style := theme.Heading
			if level == 1 {
				style = theme.Title
			}
			for _, w := range wrap(stripInline(text), width) {
				out = append(out, style.Render(w))
			}
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			out = append(out, hanging("  • ", inline(trimmed[2:]), width)...)
		case isNumbered(trimmed):
			dot := strings.Index(trimmed, ".")
			out = append(out, hanging("  "+trimmed[:dot+1]+" ", inline(strings.TrimSpace(trimmed[dot+1:])), width)...)
		case strings.HasPrefix(trimmed, ">"):
			quote := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
			for _, w := range wrap(strings.TrimSpace(trimmed[1:]), width-2) {
				out = append(out, quote.Render("│ "+w))
			}
		default:
			out = append(out, wrapInline(trimmed, width)...)
		}
	}
	return out
}

func wrap(s string, width int) []string {
	return strings.Split(wordwrap.WrapString(s, uint(max(width, 1))), "\n")
}

func wrapInline(s string, width int) []string {
	lines := wrap(s, width)
	for i, l := range lines {
		lines[i] = inline(l)
	}
	return lines
}

// hanging wraps text after a bullet, indenting continuation lines.
func hanging(bullet, text string, width int) []string {
	indent := strings.Repeat(" ", lipgloss.Width(bullet))
	lines := wrap(text, width-lipgloss.Width(bullet))
	for i := range lines {
		if i == 0 {
			lines[i] = theme.Selected.Render(bullet) + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return lines
}

func isNumbered(s string) bool {
	dot := strings.Index(s, ".")
	if dot <= 0 || dot > 3 || dot+1 >= len(s) || s[dot+1] != ' ' {
		return false
	}
	for _, c := range s[:dot] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func inline(s string) string {
	s = boldRe.ReplaceAllStringFunc(s, func(m string) string {
		return lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(m[2 : len(m)-2])
	})
	return codeRe.ReplaceAllStringFunc(s, func(m string) string {
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(m[1 : len(m)-1])
	})
}

func stripInline(s string) string {
	s = boldRe.ReplaceAllString(s, "$1")
	return codeRe.ReplaceAllString(s, "$1")
}
