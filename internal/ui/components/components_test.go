package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func key(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestMenuSkipsDisabledRows(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "one"},
		{Label: "locked too", Disabled: true},
		{Label: "two"},
	})
	if m.Selected != 1 {
		t.Fatalf("cursor starts at %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("down moved to %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("down past the end moved to %d", m.Selected)
	}
	m, _ = m.Update(key('g'))
	if m.Selected != 1 {
		t.Fatalf("home moved to %d, want 1", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Fatal("action did not run")
	}
}

func TestMenuWithItemsKeepsCursor(t *testing.T) {
	items := []MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	m := NewMenu(items)
	m.Selected = 2

	m = m.WithItems(items)
	if m.Selected != 2 {
		t.Fatalf("cursor = %d, want 2", m.Selected)
	}
	m = m.WithItems(items[:1])
	if m.Selected != 0 {
		t.Fatalf("cursor not clamped: %d", m.Selected)
	}
	if item, ok := m.Current(); !ok || item.Label != "a" {
		t.Fatalf("current = %+v, %v", item, ok)
	}
}

func TestMenuViewShowsCursorOnlyWhenFocused(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Finance", Detail: "Start: Introduction to Finance"}})
	if got := ansi.Strip(m.View(true)); !strings.Contains(got, "▸ Finance") || !strings.Contains(got, "Start: Introduction to Finance") {
		t.Fatalf("focused view = %q", got)
	}
	if got := ansi.Strip(m.View(false)); strings.Contains(got, "▸") {
		t.Fatalf("unfocused view shows cursor: %q", got)
	}
}

func TestMultiChoicePicks(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want int
	}{
		{"digit", []tea.Msg{key('2')}, 1},
		{"letter", []tea.Msg{key('c')}, 2},
		{"cursor then enter", []tea.Msg{tea.KeyPressMsg{Code: tea.KeyDown}, tea.KeyPressMsg{Code: tea.KeyEnter}}, 1},
		{"space", []tea.Msg{tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}}, 0},
		{"out of range", []tea.Msg{key('4')}, -1},
		{"movement only", []tea.Msg{tea.KeyPressMsg{Code: tea.KeyDown}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMultiChoice("Which habit helps knowledge stick?", []string{"Cramming", "Reviewing", "Skipping"}, -1)
			picked := -1
			for _, msg := range tt.msgs {
				m, picked = m.Update(msg)
			}
			if picked != tt.want {
				t.Fatalf("picked %d, want %d", picked, tt.want)
			}
		})
	}
}

func TestMultiChoiceIgnoresOutOfRangePick(t *testing.T) {
	m := NewMultiChoice("q", []string{"a", "b"}, -1)
	m, picked := m.Update(key('3'))
	if picked != -1 || m.Chosen != -1 {
		t.Fatalf("picked %d, chosen %d; want no pick", picked, m.Chosen)
	}
}

func TestRenderMarkdown(t *testing.T) {
	src := "# Budgeting\n\nSpend **less** than you `earn`.\n- Track expenses\n1. Save first\n> Pay yourself first\n```\nrent = 900\n```"
	var lines []string
	for _, l := range RenderMarkdown(src, 40) {
		lines = append(lines, ansi.Strip(l))
	}

	want := []string{
		"Budgeting",
		"",
		"Spend less than you earn.",
		"  • Track expenses",
		"  1. Save first",
		"│ Pay yourself first",
		"rent = 900",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderMarkdownHangingIndent(t *testing.T) {
	lines := RenderMarkdown("- A budget is a plan for every dollar you earn this month", 24)
	if len(lines) < 2 {
		t.Fatalf("expected the bullet to wrap, got %q", lines)
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(ansi.Strip(l), "    ") {
			t.Fatalf("continuation line not indented: %q", ansi.Strip(l))
		}
	}
}

func TestProgressBar(t *testing.T) {
	half := ansi.Strip(NewProgressBar("", 0.5, true, 20).View())
	if strings.Count(half, "█") != 7 || strings.Count(half, "░") != 7 || !strings.HasSuffix(half, "50%") {
		t.Fatalf("half bar = %q", half)
	}

	over := ansi.Strip(NewProgressBar("Lv 3", 1.7, true, 30).View())
	if strings.Contains(over, "░") || !strings.HasSuffix(over, "100%") {
		t.Fatalf("overfull bar not clamped: %q", over)
	}
}
