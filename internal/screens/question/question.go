package question

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// QuestionScreen shows one question and, once answered, its feedback.
type QuestionScreen struct {
	question quiz.ShowQuestion
	choice   components.MultiChoice
	feedback *quiz.ShowAnswerFeedback
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for q.
func New(q quiz.ShowQuestion) *QuestionScreen {
	return &QuestionScreen{
		question: q,
		choice: components.NewMultiChoice(q.Text, q.Options, func(i int) tea.Cmd {
			return screen.Emit(screen.SubmitAnswerMsg{Index: i})
		}),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.question.TopicName
}

// ApplyFeedback marks the answer on screen.
func (s *QuestionScreen) ApplyFeedback(fb quiz.ShowAnswerFeedback) {
	s.feedback = &fb
	s.choice.Reveal(fb.SelectedIndex, fb.CorrectIndex)
}

// Answered reports whether feedback is being shown.
func (s *QuestionScreen) Answered() bool {
	return s.feedback != nil
}

// Score returns the score including the shown answer.
func (s *QuestionScreen) Score() int {
	if s.feedback != nil && s.feedback.WasCorrect {
		return s.question.Score + 1
	}
	return s.question.Score
}

// Progress returns the "Question N of M" line.
func (s *QuestionScreen) Progress() string {
	return progressLine(s.question.Position, s.question.Total)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.feedback != nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, components.Keys.Select) {
			return s, screen.Emit(screen.AdvanceMsg{})
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *QuestionScreen) View(width, height int) string {
	return s.render(width, height)
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	if s.feedback != nil {
		next := k.Select
		next.SetHelp("Enter", "Next")
		return layout.HintsFor(next, k.Home, k.Quit)
	}
	return layout.HintsFor(k.Up, k.Select, k.Choose, k.Home, k.Quit)
}
