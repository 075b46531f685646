package session

import (
	"context"

	"ai-therapist/internal/rag"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Session lifecycle
	CreateSession(ctx context.Context, input CreateInput) (CreateOutput, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ListSessions(ctx context.Context) ListOutput
	ResetSession(ctx context.Context, sessionID string) error

	// Conversation
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	GetHistory(ctx context.Context, sessionID string) (HistoryOutput, error)
	GetSummary(ctx context.Context, sessionID string) (SummaryOutput, error)
	GetTranscript(ctx context.Context, sessionID string) (TranscriptOutput, error)

	// Retrieval
	GetRagStats(ctx context.Context) rag.Stats
	InitializeRag(ctx context.Context) (rag.IndexResult, error)

	Health(ctx context.Context) HealthOutput
}
