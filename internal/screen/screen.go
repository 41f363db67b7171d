// Package screen defines what the terminal quiz expects from a screen and
// the events screens send back. Screens never change quiz state; they emit
// an event and the root model hands it to the quiz controller.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/ui/layout"
)

// Screen is one page of the terminal quiz, drawn between the shared header
// and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// View draws the body in the space left by the header and footer.
	View(width, height int) string
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SelectTopicMsg starts the topic with the given id.
type SelectTopicMsg struct {
	ID string
}

// SubmitAnswerMsg answers the current question with option Index.
type SubmitAnswerMsg struct {
	Index int
}

// AdvanceMsg leaves the feedback for the answered question.
type AdvanceMsg struct{}

// RestartMsg plays the current topic again from the first question.
type RestartMsg struct{}

// GoHomeMsg returns to the topic list.
type GoHomeMsg struct{}

// Emit wraps an event in a command.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
