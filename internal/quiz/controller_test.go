package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/quizzy/internal/content"
)

func newTestController(t *testing.T) (*Controller, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	return New(content.Default(), rec), rec
}

// answerAll plays the selected topic to the end, answering correctly for
// every index present in correct.
func answerAll(t *testing.T, c *Controller, correct map[int]bool) {
	t.Helper()
	topic, ok := c.Topic()
	require.True(t, ok)
	for i, q := range topic.Questions {
		idx := q.CorrectIndex
		if !correct[i] {
			idx = (q.CorrectIndex + 1) % len(q.Options)
		}
		require.NoError(t, c.SubmitAnswer(idx))
		c.Advance()
	}
}

func TestNewIsIdle(t *testing.T) {
	c, rec := newTestController(t)

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Score())
	assert.Empty(t, c.SessionID())
	_, ok := c.Topic()
	assert.False(t, ok)
	_, ok = c.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, rec.Len())
}

func TestSelectTopicStartsAtZero(t *testing.T) {
	for _, id := range content.Default().IDs() {
		t.Run(id, func(t *testing.T) {
			c, rec := newTestController(t)

			require.NoError(t, c.SelectTopic(id))

			assert.Equal(t, StateInProgress, c.State())
			assert.Equal(t, 0, c.Position())
			assert.Equal(t, 0, c.Score())
			assert.NotEmpty(t, c.SessionID())

			topic, _ := content.Default().Lookup(id)
			require.Equal(t, 1, rec.Len())
			assert.Equal(t, ShowQuestion{
				TopicName: topic.Name,
				Text:      topic.Questions[0].Text,
				Options:   topic.Questions[0].Options,
				Position:  0,
				Total:     topic.Len(),
				Score:     0,
			}, rec.Last())
		})
	}
}

func TestSelectTopicUnknown(t *testing.T) {
	c, rec := newTestController(t)

	err := c.SelectTopic("geography")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.ErrorContains(t, err, `"geography"`)
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, 0, rec.Len())

	// Also leaves a quiz in progress untouched.
	require.NoError(t, c.SelectTopic("science"))
	require.NoError(t, c.SubmitAnswer(1))
	err = c.SelectTopic("nope")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Equal(t, StateAnswered, c.State())
	assert.Equal(t, 1, c.Score())
	topic, _ := c.Topic()
	assert.Equal(t, "science", topic.ID)
}

func TestSubmitAnswerScoring(t *testing.T) {
	t.Run("correct adds one", func(t *testing.T) {
		c, rec := newTestController(t)
		require.NoError(t, c.SelectTopic("science"))

		require.NoError(t, c.SubmitAnswer(1))
		assert.Equal(t, 1, c.Score())
		assert.Equal(t, StateAnswered, c.State())
		assert.Equal(t, ShowAnswerFeedback{SelectedIndex: 1, CorrectIndex: 1, WasCorrect: true}, rec.Last())
	})

	t.Run("wrong adds nothing", func(t *testing.T) {
		c, rec := newTestController(t)
		require.NoError(t, c.SelectTopic("science"))

		require.NoError(t, c.SubmitAnswer(0))
		assert.Equal(t, 0, c.Score())
		assert.Equal(t, StateAnswered, c.State())
		assert.Equal(t, ShowAnswerFeedback{SelectedIndex: 0, CorrectIndex: 1, WasCorrect: false}, rec.Last())
	})
}

func TestSubmitAnswerTwiceIsNoop(t *testing.T) {
	c, rec := newTestController(t)
	require.NoError(t, c.SelectTopic("science"))
	require.NoError(t, c.SubmitAnswer(1))
	n := rec.Len()

	require.NoError(t, c.SubmitAnswer(1))
	require.NoError(t, c.SubmitAnswer(0))

	assert.Equal(t, 1, c.Score())
	assert.Equal(t, StateAnswered, c.State())
	assert.Equal(t, n, rec.Len(), "no instruction for an ignored answer")
}

func TestSubmitAnswerOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		c, rec := newTestController(t)
		require.NoError(t, c.SelectTopic("science"))
		n := rec.Len()

		err := c.SubmitAnswer(idx)
		assert.ErrorIs(t, err, ErrInvalidAnswerIndex, "index %d", idx)
		assert.Equal(t, StateInProgress, c.State())
		assert.Equal(t, 0, c.Score())
		assert.Equal(t, 0, c.Position())
		assert.Equal(t, n, rec.Len())
	}
}

func TestSubmitAnswerIgnoredOutsideQuestion(t *testing.T) {
	c, rec := newTestController(t)

	require.NoError(t, c.SubmitAnswer(0), "idle")
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.SelectTopic("history"))
	answerAll(t, c, map[int]bool{0: true, 1: true})
	require.Equal(t, StateFinished, c.State())
	n := rec.Len()

	require.NoError(t, c.SubmitAnswer(0), "finished")
	assert.Equal(t, 2, c.Score())
	assert.Equal(t, n, rec.Len())
}

func TestAdvance(t *testing.T) {
	c, rec := newTestController(t)
	require.NoError(t, c.SelectTopic("sports"))

	c.Advance()
	assert.Equal(t, StateInProgress, c.State(), "advance before answering is a no-op")
	assert.Equal(t, 0, c.Position())

	require.NoError(t, c.SubmitAnswer(2))
	c.Advance()
	assert.Equal(t, StateInProgress, c.State())
	assert.Equal(t, 1, c.Position())
	q, ok := rec.Last().(ShowQuestion)
	require.True(t, ok)
	assert.Equal(t, "Which sport uses a puck?", q.Text)
	assert.Equal(t, 1, q.Position)
	assert.Equal(t, 2, q.Total)
	assert.Equal(t, 1, q.Score)

	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, q.Text, cur.Text)
}

func TestPlayThroughFinishesOnce(t *testing.T) {
	tests := []struct {
		name    string
		correct map[int]bool
		score   int
		percent int
	}{
		{"none", map[int]bool{}, 0, 0},
		{"first only", map[int]bool{0: true}, 1, 50},
		{"second only", map[int]bool{1: true}, 1, 50},
		{"all", map[int]bool{0: true, 1: true}, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestController(t)
			require.NoError(t, c.SelectTopic("movies"))

			answerAll(t, c, tt.correct)

			assert.Equal(t, StateFinished, c.State())
			assert.Equal(t, tt.score, c.Score())
			assert.Equal(t, 2, c.Position())
			_, ok := c.Current()
			assert.False(t, ok)

			var results []ShowResults
			for _, in := range rec.Instructions {
				if r, ok := in.(ShowResults); ok {
					results = append(results, r)
				}
			}
			require.Len(t, results, 1)
			assert.Equal(t, ShowResults{Score: tt.score, Total: 2, Percentage: tt.percent}, results[0])

			c.Advance()
			assert.Equal(t, StateFinished, c.State())
			assert.Len(t, rec.Instructions, 5, "question, feedback, question, feedback, results")
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{1, 2, 50},
		{2, 2, 100},
		{0, 2, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func TestRestart(t *testing.T) {
	c, rec := newTestController(t)
	require.NoError(t, c.SelectTopic("history"))
	first := c.SessionID()
	answerAll(t, c, map[int]bool{0: true, 1: true})
	require.Equal(t, StateFinished, c.State())

	c.Restart()

	assert.Equal(t, StateInProgress, c.State())
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Score())
	topic, ok := c.Topic()
	require.True(t, ok)
	assert.Equal(t, "history", topic.ID)
	assert.NotEqual(t, first, c.SessionID())

	q, ok := rec.Last().(ShowQuestion)
	require.True(t, ok)
	assert.Equal(t, 0, q.Position)
	assert.Equal(t, "Who was the first president of the USA?", q.Text)
}

func TestRestartFromEveryState(t *testing.T) {
	setups := map[State]func(c *Controller){
		StateInProgress: func(c *Controller) {
			_ = c.SelectTopic("science")
			_ = c.SubmitAnswer(1)
			c.Advance()
		},
		StateAnswered: func(c *Controller) {
			_ = c.SelectTopic("science")
			_ = c.SubmitAnswer(1)
		},
		StateFinished: func(c *Controller) {
			_ = c.SelectTopic("science")
			_ = c.SubmitAnswer(1)
			c.Advance()
			_ = c.SubmitAnswer(1)
			c.Advance()
		},
	}

	for state, setup := range setups {
		t.Run(state.String(), func(t *testing.T) {
			c, _ := newTestController(t)
			setup(c)
			require.Equal(t, state, c.State())

			c.Restart()
			assert.Equal(t, StateInProgress, c.State())
			assert.Equal(t, 0, c.Position())
			assert.Equal(t, 0, c.Score())
		})
	}

	t.Run("idle", func(t *testing.T) {
		c, rec := newTestController(t)
		c.Restart()
		assert.Equal(t, StateIdle, c.State())
		assert.Equal(t, 0, rec.Len())
	})
}

func TestGoHomeFromEveryState(t *testing.T) {
	setups := map[State]func(c *Controller){
		StateIdle: func(c *Controller) {},
		StateInProgress: func(c *Controller) {
			_ = c.SelectTopic("sports")
		},
		StateAnswered: func(c *Controller) {
			_ = c.SelectTopic("sports")
			_ = c.SubmitAnswer(2)
		},
		StateFinished: func(c *Controller) {
			_ = c.SelectTopic("sports")
			_ = c.SubmitAnswer(2)
			c.Advance()
			_ = c.SubmitAnswer(1)
			c.Advance()
		},
	}

	for state, setup := range setups {
		t.Run(state.String(), func(t *testing.T) {
			c, rec := newTestController(t)
			setup(c)
			require.Equal(t, state, c.State())

			c.GoHome()
			assert.Equal(t, StateIdle, c.State())
			assert.Equal(t, 0, c.Position())
			assert.Equal(t, 0, c.Score())
			assert.Empty(t, c.SessionID())
			_, ok := c.Topic()
			assert.False(t, ok)
			assert.Equal(t, ShowHome{}, rec.Last())
		})
	}
}

func TestGoHomeThenAnotherTopic(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.SelectTopic("science"))
	require.NoError(t, c.SubmitAnswer(1))
	c.Advance()

	c.GoHome()
	require.NoError(t, c.SelectTopic("movies"))

	assert.Equal(t, StateInProgress, c.State())
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Score())
	topic, _ := c.Topic()
	assert.Equal(t, "movies", topic.ID)
}

func TestSelectTopicMidQuiz(t *testing.T) {
	c, _ := newTestController(t)
	require.NoError(t, c.SelectTopic("science"))
	require.NoError(t, c.SubmitAnswer(1))
	c.Advance()

	require.NoError(t, c.SelectTopic("history"))
	assert.Equal(t, StateInProgress, c.State())
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 0, c.Score())
}

func TestShowQuestionDoesNotAliasCatalog(t *testing.T) {
	c, rec := newTestController(t)
	require.NoError(t, c.SelectTopic("science"))

	q := rec.Last().(ShowQuestion)
	q.Options[0] = "Pluto"

	cur, _ := c.Current()
	assert.Equal(t, "Earth", cur.Options[0])
}

func TestSingleQuestionTopic(t *testing.T) {
	cat, err := content.NewCatalog(content.Topic{
		ID:   "one",
		Name: "One",
		Questions: []content.Question{
			{Text: "2+2?", Options: []string{"3", "4", "5"}, CorrectIndex: 1},
		},
	})
	require.NoError(t, err)
	rec := &Recorder{}
	c := New(cat, rec)

	require.NoError(t, c.SelectTopic("one"))
	require.NoError(t, c.SubmitAnswer(1))
	c.Advance()

	assert.Equal(t, StateFinished, c.State())
	assert.Equal(t, ShowResults{Score: 1, Total: 1, Percentage: 100}, rec.Last())
}

func TestRendererFunc(t *testing.T) {
	var kinds []string
	c := New(content.Default(), RendererFunc(func(in Instruction) {
		kinds = append(kinds, in.Kind())
	}))

	require.NoError(t, c.SelectTopic("science"))
	require.NoError(t, c.SubmitAnswer(0))
	c.Advance()
	require.NoError(t, c.SubmitAnswer(1))
	c.Advance()
	c.GoHome()

	assert.Equal(t, []string{"question", "feedback", "question", "feedback", "results", "home"}, kinds)
}

func TestControllerLogsTransitions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := New(content.Default(), &Recorder{}, WithLogger(zap.New(core)))

	require.NoError(t, c.SelectTopic("science"))
	assert.Error(t, c.SubmitAnswer(9))

	transitions := logs.FilterMessage("transition").All()
	require.Len(t, transitions, 1)
	fields := transitions[0].ContextMap()
	assert.Equal(t, "select_topic", fields["event"])
	assert.Equal(t, "idle", fields["from"])
	assert.Equal(t, "in_progress", fields["to"])
	assert.Equal(t, c.SessionID(), fields["session"])

	rejected := logs.FilterMessage("answer rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zap.InfoLevel, rejected[0].Level)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "in_progress", StateInProgress.String())
	assert.Equal(t, "answered", StateAnswered.String())
	assert.Equal(t, "finished", StateFinished.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestTopicAndCurrentAreCopies(t *testing.T) {
	c, rec := newTestController(t)
	require.NoError(t, c.SelectTopic("science"))

	topic, _ := c.Topic()
	wantCorrect := topic.Questions[0].CorrectIndex
	topic.Questions[0].CorrectIndex = (wantCorrect + 1) % len(topic.Questions[0].Options)
	topic.Questions[0].Options[0] = "changed"

	q, _ := c.Current()
	q.Options[1] = "changed"

	again, _ := c.Topic()
	assert.Equal(t, wantCorrect, again.Questions[0].CorrectIndex)
	assert.NotContains(t, again.Questions[0].Options, "changed")

	fresh, _ := content.Default().Lookup("science")
	assert.Equal(t, fresh, again)

	require.NoError(t, c.SubmitAnswer(wantCorrect))
	fb, ok := rec.Last().(ShowAnswerFeedback)
	require.True(t, ok)
	assert.True(t, fb.WasCorrect)
}
