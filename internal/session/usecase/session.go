package usecase

import (
	"context"
	"errors"
	"fmt"

	"ai-therapist/internal/session"
)

// CreateSession registers a new session. Missing credentials are reported as such;
// every other failure collapses into ErrCreateFailed.
func (uc *implUseCase) CreateSession(ctx context.Context, input session.CreateInput) (session.CreateOutput, error) {
	rec, err := uc.registry.Create(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSession: %v", err)
		if errors.Is(err, session.ErrMissingCredentials) {
			return session.CreateOutput{}, err
		}
		return session.CreateOutput{}, fmt.Errorf("%w: %w", session.ErrCreateFailed, err)
	}

	uc.metrics.SessionCreated()
	return session.CreateOutput{
		SessionID:    rec.SessionID,
		CreatedAt:    rec.CreatedAt,
		MessageCount: rec.MessageCount,
	}, nil
}

func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) error {
	if !uc.registry.Delete(ctx, sessionID) {
		return session.ErrSessionNotFound
	}
	uc.metrics.SessionDeleted(1)
	return nil
}

func (uc *implUseCase) ListSessions(ctx context.Context) session.ListOutput {
	return session.ListOutput{Sessions: uc.registry.ListAll(ctx)}
}

// ResetSession clears the conversation but keeps the session id and its counters.
func (uc *implUseCase) ResetSession(ctx context.Context, sessionID string) error {
	cs, err := uc.registry.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := cs.Reset(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.ResetSession: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Health(ctx context.Context) session.HealthOutput {
	return session.HealthOutput{
		ActiveSessions: uc.registry.Len(),
		RAG:            uc.rag.GetStats(ctx),
	}
}
