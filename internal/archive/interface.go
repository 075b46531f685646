package archive

import (
	"context"

	"ai-therapist/internal/model"
)

// Repository persists conversation turns beyond the lifetime of a session.
//
//go:generate mockery --name Repository
type Repository interface {
	SaveTurns(ctx context.Context, sessionID string, turns []model.Turn) error
	ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error)
}
