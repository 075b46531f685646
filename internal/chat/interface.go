package chat

import (
	"context"

	"ai-therapist/internal/rag"
)

// Upstream opens stateful model conversations.
type Upstream interface {
	Open(ctx context.Context) (Conversation, error)
}

// Conversation is one upstream chat handle. It keeps its own model-side history.
type Conversation interface {
	Send(ctx context.Context, prompt string) (Reply, error)
	Close() error
}

// Retriever supplies reference examples. It never fails; an empty slice means no context.
type Retriever interface {
	Retrieve(ctx context.Context, query string, n int) []rag.Example
}
