package gemini

import "context"

// IGemini is a client for the generateContent REST endpoint.
// A single value may be shared by every chat session.
type IGemini interface {
	// GenerateContent sends the whole multi-turn request. The client keeps no history.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model is the model id requests are sent to.
	Model() string
}

// New validates cfg, fills its defaults and returns a ready client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
