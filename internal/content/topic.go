package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Topic is a named, ordered collection of questions played as one quiz.
type Topic struct {
	ID        string
	Name      string
	Questions []Question
}

// Len returns the number of questions in the topic.
func (t Topic) Len() int {
	return len(t.Questions)
}

// Validate checks the topic and every question it owns.
func (t Topic) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("topic id is empty")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("topic %q: name is empty", t.ID)
	}
	if len(t.Questions) == 0 {
		return fmt.Errorf("topic %q has no questions", t.ID)
	}
	for i, q := range t.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("topic %q question %d: %w", t.ID, i, err)
		}
	}
	return nil
}

// Clone returns a deep copy of t sharing no slices with it.
func (t Topic) Clone() Topic {
	qs := make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = slices.Clone(q.Options)
		qs[i] = q
	}
	t.Questions = qs
	return t
}
