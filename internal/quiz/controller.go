package quiz

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/content"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition and rejection logs.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller is the quiz state machine. It owns the session state and emits
// render instructions to a Renderer it does not own. It is not safe for
// concurrent use.
type Controller struct {
	catalog  *content.Catalog
	renderer Renderer
	log      *zap.Logger

	topic     *content.Topic
	position  int
	score     int
	state     State
	sessionID string
}

// New creates an idle Controller over catalog. Nothing is rendered until the
// first event arrives.
func New(catalog *content.Catalog, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		catalog:  catalog,
		renderer: renderer,
		log:      zap.NewNop(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectTopic starts a play-through of the topic with the given id. It is
// valid from every state and discards any quiz in progress.
func (c *Controller) SelectTopic(id string) error {
	t, ok := c.catalog.Lookup(id)
	if !ok {
		c.log.Info("topic rejected", zap.String("topic", id), zap.Stringer("state", c.state))
		return fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}
	c.topic = &t
	c.begin("select_topic")
	return nil
}

// SubmitAnswer scores the option at index for the current question. It only
// acts while a question is awaiting an answer and is a no-op otherwise.
func (c *Controller) SubmitAnswer(index int) error {
	if c.state != StateInProgress {
		c.log.Debug("answer ignored", zap.Stringer("state", c.state), c.sessionField())
		return nil
	}
	q := c.topic.Questions[c.position]
	if index < 0 || index >= len(q.Options) {
		c.log.Info("answer rejected",
			zap.Int("index", index),
			zap.Int("options", len(q.Options)),
			c.sessionField(),
		)
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidAnswerIndex, index, len(q.Options))
	}

	correct := q.IsCorrect(index)
	if correct {
		c.score++
	}
	c.transition(StateAnswered, "submit_answer", zap.Int("index", index), zap.Bool("correct", correct))
	c.renderer.Render(ShowAnswerFeedback{
		SelectedIndex: index,
		CorrectIndex:  q.CorrectIndex,
		WasCorrect:    correct,
	})
	return nil
}

// Advance moves past the answered question to the next one, or to the
// results once the last question is done. It is a no-op unless feedback is
// being shown.
func (c *Controller) Advance() {
	if c.state != StateAnswered {
		c.log.Debug("advance ignored", zap.Stringer("state", c.state), c.sessionField())
		return
	}
	total := c.topic.Len()
	if c.position+1 < total {
		c.position++
		c.transition(StateInProgress, "advance")
		c.renderQuestion()
		return
	}

	c.position = total
	c.transition(StateFinished, "advance", zap.Int("score", c.score), zap.Int("total", total))
	c.renderer.Render(ShowResults{
		Score:      c.score,
		Total:      total,
		Percentage: Percentage(c.score, total),
	})
}

// Restart replays the selected topic from its first question. Without a
// selected topic it does nothing.
func (c *Controller) Restart() {
	if c.topic == nil {
		c.log.Debug("restart ignored", zap.Stringer("state", c.state))
		return
	}
	c.begin("restart")
}

// GoHome abandons any play-through and returns to the topic list.
func (c *Controller) GoHome() {
	c.topic = nil
	c.position = 0
	c.score = 0
	c.transition(StateIdle, "go_home")
	c.sessionID = ""
	c.renderer.Render(ShowHome{})
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Position returns the 0-based index of the current question. It equals the
// topic length once the quiz is finished.
func (c *Controller) Position() int { return c.position }

// Score returns the number of correct answers so far.
func (c *Controller) Score() int { return c.score }

// Topic returns a copy of the selected topic, if any.
func (c *Controller) Topic() (content.Topic, bool) {
	if c.topic == nil {
		return content.Topic{}, false
	}
	return c.topic.Clone(), true
}

// Catalog returns the catalog the controller plays from.
func (c *Controller) Catalog() *content.Catalog { return c.catalog }

// SessionID returns the id of the current play-through, empty when idle.
func (c *Controller) SessionID() string { return c.sessionID }

// Current returns the question at the current position while one is shown.
func (c *Controller) Current() (content.Question, bool) {
	if c.topic == nil || c.position >= c.topic.Len() {
		return content.Question{}, false
	}
	q := c.topic.Questions[c.position]
	q.Options = slices.Clone(q.Options)
	return q, true
}

func (c *Controller) begin(event string) {
	c.position = 0
	c.score = 0
	c.sessionID = uuid.NewString()
	c.transition(StateInProgress, event, zap.String("topic", c.topic.ID))
	c.renderQuestion()
}

func (c *Controller) renderQuestion() {
	q := c.topic.Questions[c.position]
	c.renderer.Render(ShowQuestion{
		TopicName: c.topic.Name,
		Text:      q.Text,
		Options:   slices.Clone(q.Options),
		Position:  c.position,
		Total:     c.topic.Len(),
		Score:     c.score,
	})
}

func (c *Controller) transition(to State, event string, fields ...zap.Field) {
	from := c.state
	c.state = to
	c.log.Debug("transition", append([]zap.Field{
		zap.String("event", event),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("position", c.position),
		c.sessionField(),
	}, fields...)...)
}

func (c *Controller) sessionField() zap.Field {
	return zap.String("session", c.sessionID)
}

// Percentage returns 100*score/total rounded half up, using integer
// arithmetic only. A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*score + total) / (2 * total)
}
