package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type chosenMsg struct{ index int }

func newTestChoice() MultiChoice {
	return NewMultiChoice("Which?", []string{"a", "b", "c"}, func(i int) tea.Cmd {
		return func() tea.Msg { return chosenMsg{i} }
	})
}

func TestMultiChoiceNavigateAndSelect(t *testing.T) {
	m := newTestChoice()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	if got := cmd().(chosenMsg); got.index != 1 {
		t.Errorf("expected index 1, got %d", got.index)
	}
}

func TestMultiChoiceDigit(t *testing.T) {
	m := newTestChoice()

	m, cmd := m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected command for digit")
	}
	if got := cmd().(chosenMsg); got.index != 2 {
		t.Errorf("expected index 2, got %d", got.index)
	}
	if m.Selected != 2 {
		t.Errorf("expected cursor to follow digit, got %d", m.Selected)
	}

	// Digits past the last option are still reported.
	_, cmd = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if got := cmd().(chosenMsg); got.index != 8 {
		t.Errorf("expected index 8, got %d", got.index)
	}
}

func TestMultiChoiceRevealFreezesInput(t *testing.T) {
	m := newTestChoice()
	m.Reveal(0, 1)

	if m.IsCorrect() {
		t.Error("expected wrong answer")
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("revealed choice should ignore keys")
	}

	view := m.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Error("expected correct and incorrect marks after reveal")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	var fired string
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			fired = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		item("one"),
		{Label: "off2", Disabled: true},
		item("two"),
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled, got %d", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "two" {
		t.Errorf("expected 'two' to fire, got %q", fired)
	}

	m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if fired != "one" {
		t.Errorf("expected digit 2 to fire 'one', got %q", fired)
	}
}

func TestDigitIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"9", 8, true},
		{"0", 0, false},
		{"a", 0, false},
		{"12", 0, false},
	}
	for _, tt := range tests {
		got, ok := DigitIndex(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DigitIndex(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestProgressBarWidth(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               int
	}{
		{1, 3, 30, 30},
		{0, 0, 10, 10},
		{5, 3, 12, 12},
		{1, 2, 2, 4},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.done, tt.total, tt.width)
		if got := lipgloss.Width(bar); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) width = %d, want %d", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}
