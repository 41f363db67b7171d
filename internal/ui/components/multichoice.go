package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

var promptStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

// MultiChoice lists the options of one question. It only reports which
// option was picked; Reveal marks the options once the quiz has scored it.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int

	revealed bool
	chosen   int
	correct  int
	onChoose func(index int) tea.Cmd
}

func NewMultiChoice(question string, options []string, onChoose func(int) tea.Cmd) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		chosen:   -1,
		correct:  -1,
		onChoose: onChoose,
	}
}

// Update moves the cursor or picks an option. Keys are ignored once revealed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.revealed {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		m.Selected = max(m.Selected-1, 0)
	case key.Matches(kmsg, Keys.Down):
		m.Selected = min(m.Selected+1, len(m.Options)-1)
	case key.Matches(kmsg, Keys.Select):
		return m, m.pick(m.Selected)
	case key.Matches(kmsg, Keys.Choose):
		i, ok := DigitIndex(kmsg.String())
		if !ok {
			break
		}
		if i < len(m.Options) {
			m.Selected = i
		}
		// Out of range digits still go out so the quiz can reject them.
		return m, m.pick(i)
	}
	return m, nil
}

func (m MultiChoice) pick(i int) tea.Cmd {
	if m.onChoose == nil {
		return nil
	}
	return m.onChoose(i)
}

// Reveal freezes the list with chosen marked as the answer and correct as
// the right option.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.revealed, m.chosen, m.correct = true, chosen, correct
}

// IsCorrect reports whether the revealed answer was right.
func (m MultiChoice) IsCorrect() bool {
	return m.revealed && m.chosen == m.correct
}

// OptionLabel is the letter printed before option i (A, B, ...).
func OptionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return strconv.Itoa(i + 1)
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.Question))
	b.WriteString("\n\n")
	for i, opt := range m.Options {
		b.WriteString(m.optionLine(i, opt))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MultiChoice) optionLine(i int, opt string) string {
	cursor := "  "
	if !m.revealed && i == m.Selected {
		cursor = "▸ "
	}
	line := cursor + OptionLabel(i) + ")  " + opt

	switch {
	case m.revealed && i == m.correct:
		return theme.Correct.Render(line + "  ✓")
	case m.revealed && i == m.chosen:
		return theme.Incorrect.Render(line + "  ✗")
	case m.revealed:
		return theme.Dimmed.Render(line)
	case i == m.Selected:
		return theme.Selected.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}
