package session

import (
	"time"

	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/safety"
)

// --- Session Domain Model ---

// Record is the registry metadata of one live session.
type Record struct {
	SessionID    string
	UserID       string
	Metadata     map[string]any
	CreatedAt    time.Time
	LastActivity time.Time
	MessageCount int
}

// --- UseCase Inputs ---

type CreateInput struct {
	UserID   string
	Metadata map[string]any
}

type ChatInput struct {
	SessionID    string
	Message      string
	UseRAG       bool
	ExampleCount int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	SessionID    string
	CreatedAt    time.Time
	MessageCount int
}

type ChatOutput struct {
	SessionID   string
	Response    string
	SourcesUsed []string
	Timestamp   time.Time
	// Safety is set only when crisis screening is enabled.
	Safety *safety.Assessment
}

type HistoryOutput struct {
	SessionID string
	Messages  []model.Turn
	CreatedAt time.Time
}

type SummaryOutput struct {
	SessionID string
	Summary   string
}

type ListOutput struct {
	Sessions []Record
}

type TranscriptOutput struct {
	SessionID string
	Messages  []model.Turn
}

type HealthOutput struct {
	ActiveSessions int
	RAG            rag.Stats
}
