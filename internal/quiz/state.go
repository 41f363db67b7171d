package quiz

// State is the phase of the current play-through.
type State int

const (
	StateIdle       State = iota // No topic selected, home is shown
	StateInProgress              // A question is shown and awaiting an answer
	StateAnswered                // Feedback is shown for the current question
	StateFinished                // All questions answered, results are shown
)

// String returns the lowercase name used in logs and the JSON view.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateAnswered:
		return "answered"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
