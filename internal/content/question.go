package content

import (
	"errors"
	"fmt"
	"strings"
)

// MinOptions is the smallest number of answer options a question may have.
const MinOptions = 2

// Question is a single multiple-choice prompt. Values are built once when
// the catalog loads and are never mutated afterwards.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
}

// IsCorrect reports whether selectedIndex is the correct option.
// It does not check bounds; callers only pass indices of rendered options.
func (q Question) IsCorrect(selectedIndex int) bool {
	return selectedIndex == q.CorrectIndex
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text is empty")
	}
	if len(q.Options) < MinOptions {
		return fmt.Errorf("question %q has %d options, need at least %d", q.Text, len(q.Options), MinOptions)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("question %q: option %d is empty", q.Text, i)
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q: correct index %d out of range [0, %d)", q.Text, q.CorrectIndex, len(q.Options))
	}
	return nil
}
