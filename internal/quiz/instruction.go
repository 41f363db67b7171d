package quiz

// Instruction describes what the presentation layer should display next.
// The set of instructions is closed; adapters switch on the concrete type.
type Instruction interface {
	// Kind is a short stable name for logs and JSON payloads.
	Kind() string
	instruction()
}

// ShowQuestion asks the adapter to display a question awaiting an answer.
type ShowQuestion struct {
	TopicName string   `json:"topic_name"`
	Text      string   `json:"text"`
	Options   []string `json:"options"`
	Position  int      `json:"position"`
	Total     int      `json:"total"`
	Score     int      `json:"score"`
}

// ShowAnswerFeedback asks the adapter to mark the chosen option and reveal
// the correct one.
type ShowAnswerFeedback struct {
	SelectedIndex int  `json:"selected_index"`
	CorrectIndex  int  `json:"correct_index"`
	WasCorrect    bool `json:"was_correct"`
}

// ShowResults asks the adapter to display the final score.
type ShowResults struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ShowHome asks the adapter to display the topic list.
type ShowHome struct{}

func (ShowQuestion) Kind() string       { return "question" }
func (ShowAnswerFeedback) Kind() string { return "feedback" }
func (ShowResults) Kind() string        { return "results" }
func (ShowHome) Kind() string           { return "home" }

func (ShowQuestion) instruction()       {}
func (ShowAnswerFeedback) instruction() {}
func (ShowResults) instruction()        {}
func (ShowHome) instruction()           {}

// Renderer receives instructions from the Controller. The Controller does
// not own it and never waits on it.
type Renderer interface {
	Render(Instruction)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(Instruction)

// Render calls f(in).
func (f RendererFunc) Render(in Instruction) { f(in) }

// Recorder is a Renderer that keeps every instruction it receives.
type Recorder struct {
	Instructions []Instruction
}

// Render appends in to the recorded list.
func (r *Recorder) Render(in Instruction) {
	r.Instructions = append(r.Instructions, in)
}

// Last returns the most recent instruction, or nil when nothing was rendered.
func (r *Recorder) Last() Instruction {
	if len(r.Instructions) == 0 {
		return nil
	}
	return r.Instructions[len(r.Instructions)-1]
}

// Len returns the number of recorded instructions.
func (r *Recorder) Len() int { return len(r.Instructions) }

// Reset drops all recorded instructions.
func (r *Recorder) Reset() { r.Instructions = nil }
