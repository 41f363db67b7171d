package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/quizzy/internal/content"
	"github.com/abhisek/quizzy/internal/quiz"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").
		Funcs(template.FuncMap{
			"label": optionLabel,
			"inc":   func(i int) int { return i + 1 },
		}).
		ParseFS(templateFS, "templates/page.html.tmpl"),
)

// pageData is what the template sees. Exactly one of Topics, Question or
// Results drives the body.
type pageData struct {
	Kind     string
	Topics   []content.Topic
	Question *quiz.ShowQuestion
	Feedback *quiz.ShowAnswerFeedback
	Results  *quiz.ShowResults
	Topic    string
}

type optionView struct {
	Index    int
	Text     string
	Selected bool
	Correct  bool
}

// Options pairs each option with its feedback marks.
func (p pageData) Options() []optionView {
	if p.Question == nil {
		return nil
	}
	out := make([]optionView, len(p.Question.Options))
	for i, text := range p.Question.Options {
		out[i] = optionView{Index: i, Text: text}
		if p.Feedback != nil {
			out[i].Selected = i == p.Feedback.SelectedIndex
			out[i].Correct = i == p.Feedback.CorrectIndex
		}
	}
	return out
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}

func (s *Server) index(c *fiber.Ctx) error {
	s.mu.Lock()
	data := s.pageData()
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// pageData snapshots the session for the template. Callers hold s.mu.
func (s *Server) pageData() pageData {
	data := pageData{Kind: quiz.ShowHome{}.Kind()}
	if t, ok := s.ctrl.Topic(); ok {
		data.Topic = t.Name
	}

	switch in := s.last.(type) {
	case quiz.ShowQuestion:
		q := s.question
		data.Kind = in.Kind()
		data.Question = &q
	case quiz.ShowAnswerFeedback:
		q, fb := s.question, in
		data.Kind = in.Kind()
		data.Question = &q
		data.Feedback = &fb
	case quiz.ShowResults:
		data.Kind = in.Kind()
		data.Results = &in
	default:
		data.Topics = s.ctrl.Catalog().Topics()
	}
	return data
}
