package quiz

import "errors"

var (
	// ErrUnknownTopic is returned when SelectTopic is given an id the catalog does not hold.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrInvalidAnswerIndex is returned when SubmitAnswer is given an index outside the
	// current question's options.
	ErrInvalidAnswerIndex = errors.New("invalid answer index")
)
