package chat

import "time"

// State is the observable turn state of a Session.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
)

// Config bounds a Session.
type Config struct {
	// MaxHistory is the prompt window in turns; 2*MaxHistory turns are retained.
	MaxHistory int
	// DefaultExamples is used when a turn asks for RAG without a count.
	DefaultExamples int
}

// TurnInput is one user message.
type TurnInput struct {
	Message      string
	UseRAG       bool
	ExampleCount int
}

// TurnOutput is the assistant reply to a TurnInput.
type TurnOutput struct {
	Response string
	// SourcesUsed lists the dataset of every retrieved example in retrieval order; nil when none.
	SourcesUsed []string
	Timestamp   time.Time
	Usage       Usage
}

// Reply is what the upstream returns for one prompt.
type Reply struct {
	Text  string
	Usage Usage
}

// Usage is the token accounting of one upstream call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
