package openaicompat

import "context"

// IClient is a chat-completions client for any OpenAI-compatible API.
// Implementations are safe for concurrent use.
type IClient interface {
	CreateChatCompletion(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a client. BaseURL and Model are required.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
