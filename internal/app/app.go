package app

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/content"
	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/screens/home"
	"github.com/abhisek/quizzy/internal/screens/question"
	"github.com/abhisek/quizzy/internal/screens/results"
	"github.com/abhisek/quizzy/internal/screens/welcome"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/layout"
)

// Options configures the terminal quiz.
type Options struct {
	Catalog *content.Catalog
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model. It owns the quiz controller and
// turns its render instructions into screens.
type AppModel struct {
	router  *router.Router
	ctrl    *quiz.Controller
	pending *quiz.Recorder
	log     *zap.Logger
	last    *home.LastResult
	status  string
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	pending := &quiz.Recorder{}
	return AppModel{
		router:  router.New(welcome.New()),
		ctrl:    quiz.New(catalog, pending, quiz.WithLogger(log)),
		pending: pending,
		log:     log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		m.status = ""
		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Home):
			if _, onHome := m.router.Active().(*home.HomeScreen); onHome {
				return m, nil
			}
			m.ctrl.GoHome()
			return m, m.apply(nil)
		}

	case screen.SelectTopicMsg:
		return m, m.apply(m.ctrl.SelectTopic(msg.ID))
	case screen.SubmitAnswerMsg:
		return m, m.apply(m.ctrl.SubmitAnswer(msg.Index))
	case screen.AdvanceMsg:
		m.ctrl.Advance()
		return m, m.apply(nil)
	case screen.RestartMsg:
		m.ctrl.Restart()
		return m, m.apply(nil)
	case screen.GoHomeMsg:
		m.ctrl.GoHome()
		return m, m.apply(nil)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// apply maps the instructions emitted by the last event onto the screen
// stack. A non-nil err becomes the footer status and leaves screens as is.
func (m *AppModel) apply(err error) tea.Cmd {
	defer m.pending.Reset()

	if err != nil {
		m.status = statusFor(err)
		m.log.Warn("event rejected", zap.Error(err), zap.Stringer("state", m.ctrl.State()))
		return nil
	}

	var cmds []tea.Cmd
	for _, in := range m.pending.Instructions {
		switch in := in.(type) {
		case quiz.ShowHome:
			cmds = append(cmds, m.router.Reset(home.New(m.ctrl.Catalog(), m.last)))

		case quiz.ShowQuestion:
			qs := question.New(in)
			if _, onHome := m.router.Active().(*home.HomeScreen); onHome {
				cmds = append(cmds, m.router.Push(qs))
			} else {
				cmds = append(cmds, m.router.Replace(qs))
			}

		case quiz.ShowAnswerFeedback:
			if qs, ok := m.router.Active().(*question.QuestionScreen); ok {
				qs.ApplyFeedback(in)
			}

		case quiz.ShowResults:
			topic, _ := m.ctrl.Topic()
			m.last = &home.LastResult{
				TopicName:  topic.Name,
				Score:      in.Score,
				Total:      in.Total,
				Percentage: in.Percentage,
			}
			cmds = append(cmds, m.router.Replace(results.New(topic.Name, in)))
		}
	}
	return tea.Batch(cmds...)
}

func statusFor(err error) string {
	switch {
	case errors.Is(err, quiz.ErrInvalidAnswerIndex):
		return "That option does not exist"
	case errors.Is(err, quiz.ErrUnknownTopic):
		return "That topic is not in the catalog"
	default:
		return err.Error()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame, or nothing before the first window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()

	progress := ""
	if qs, ok := active.(*question.QuestionScreen); ok {
		progress = fmt.Sprintf("%s · Score: %d", qs.Progress(), qs.Score())
	}
	header := layout.RenderHeader(active.Title(), progress, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.status, m.width)

	return layout.RenderFrame(header, footer, m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal quiz: %w", err)
	}
	return nil
}
