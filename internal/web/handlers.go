package web

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/quizzy/internal/quiz"
)

// StateResponse is the body of GET /api/state and of JSON event replies.
type StateResponse struct {
	State       string         `json:"state"`
	Position    int            `json:"position"`
	Score       int            `json:"score"`
	Instruction map[string]any `json:"instruction"`
}

// TopicResponse is one entry of GET /api/topics.
type TopicResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Questions int    `json:"questions"`
}

func (s *Server) selectTopic(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctrl.SelectTopic(c.Params("id")); err != nil {
		return err
	}
	return s.reply(c)
}

func (s *Server) submitAnswer(c *fiber.Ctx) error {
	raw := c.Params("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", quiz.ErrInvalidAnswerIndex, raw)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ctrl.SubmitAnswer(index); err != nil {
		return err
	}
	return s.reply(c)
}

// event wraps a Controller call that cannot fail.
func (s *Server) event(fn func(*quiz.Controller)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		fn(s.ctrl)
		return s.reply(c)
	}
}

func (s *Server) state(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateJSON(c)
}

func (s *Server) topics(c *fiber.Ctx) error {
	topics := s.ctrl.Catalog().Topics()
	out := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicResponse{ID: t.ID, Name: t.Name, Questions: t.Len()})
	}
	return c.JSON(out)
}

// reply answers an event: JSON clients get the new state, browsers are sent
// back to the page. Callers hold s.mu.
func (s *Server) reply(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return s.stateJSON(c)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) stateJSON(c *fiber.Ctx) error {
	in, err := instructionJSON(s.last)
	if err != nil {
		return err
	}
	return c.JSON(StateResponse{
		State:       s.ctrl.State().String(),
		Position:    s.ctrl.Position(),
		Score:       s.ctrl.Score(),
		Instruction: in,
	})
}

// instructionJSON flattens an instruction's fields next to its kind.
func instructionJSON(in quiz.Instruction) (map[string]any, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode %s instruction: %w", in.Kind(), err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s instruction: %w", in.Kind(), err)
	}
	out["kind"] = in.Kind()
	return out, nil
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
