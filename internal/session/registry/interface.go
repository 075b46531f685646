package registry

import (
	"context"
	"time"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/session"
)

// Registry is the in-memory table of live sessions.
//
//go:generate mockery --name Registry
type Registry interface {
	Create(ctx context.Context, input session.CreateInput) (session.Record, error)
	// Get returns the chat session and refreshes its last activity.
	Get(ctx context.Context, sessionID string) (*chat.Session, error)
	// Record returns the metadata without touching it.
	Record(ctx context.Context, sessionID string) (session.Record, error)
	Delete(ctx context.Context, sessionID string) bool
	IncrementMessageCount(ctx context.Context, sessionID string)
	EvictExpired(ctx context.Context, maxAge time.Duration) int
	ListAll(ctx context.Context) []session.Record
	StartJanitor(ctx context.Context, interval, maxAge time.Duration)
	Len() int
	Close()
}

// Factory builds the chat session behind a new record.
type Factory func(ctx context.Context) (*chat.Session, error)
