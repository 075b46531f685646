package usecase

import (
	"context"
	"errors"
	"time"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/metrics"
	"ai-therapist/internal/model"
	"ai-therapist/internal/session"
)

// Chat runs one turn, bounded by the chat timeout. On success the session counter is
// bumped, usage is recorded and both turns are archived.
func (uc *implUseCase) Chat(ctx context.Context, input session.ChatInput) (session.ChatOutput, error) {
	cs, err := uc.registry.Get(ctx, input.SessionID)
	if err != nil {
		return session.ChatOutput{}, err
	}

	out := session.ChatOutput{SessionID: input.SessionID}
	if uc.safety != nil {
		assessment := uc.safety.Check(ctx, input.Message)
		if assessment.IsCrisis {
			uc.metrics.RecordCrisis()
		}
		out.Safety = &assessment
	}

	tctx, cancel := context.WithTimeout(ctx, uc.chatTimeout)
	defer cancel()

	sentAt := time.Now()
	turn, err := cs.SendTurn(tctx, chat.TurnInput{
		Message:      input.Message,
		UseRAG:       input.UseRAG,
		ExampleCount: input.ExampleCount,
	})
	if err != nil {
		uc.metrics.RecordError(errorCategory(err))
		uc.l.Errorf(ctx, "uc.Chat.SendTurn: session=%s: %v", input.SessionID, err)
		return session.ChatOutput{}, err
	}

	uc.registry.IncrementMessageCount(ctx, input.SessionID)
	uc.metrics.RecordChat(turn.Usage.InputTokens, turn.Usage.OutputTokens)
	uc.archiveTurns(ctx, input.SessionID, []model.Turn{
		{Role: model.RoleUser, Content: input.Message, Timestamp: sentAt},
		{Role: model.RoleAssistant, Content: turn.Response, Timestamp: turn.Timestamp},
	})

	out.Response = turn.Response
	out.SourcesUsed = turn.SourcesUsed
	out.Timestamp = turn.Timestamp
	return out, nil
}

func (uc *implUseCase) GetHistory(ctx context.Context, sessionID string) (session.HistoryOutput, error) {
	cs, err := uc.registry.Get(ctx, sessionID)
	if err != nil {
		return session.HistoryOutput{}, err
	}
	rec, err := uc.registry.Record(ctx, sessionID)
	if err != nil {
		return session.HistoryOutput{}, err
	}

	return session.HistoryOutput{
		SessionID: sessionID,
		Messages:  cs.History(),
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (uc *implUseCase) GetSummary(ctx context.Context, sessionID string) (session.SummaryOutput, error) {
	cs, err := uc.registry.Get(ctx, sessionID)
	if err != nil {
		return session.SummaryOutput{}, err
	}

	tctx, cancel := context.WithTimeout(ctx, uc.chatTimeout)
	defer cancel()

	summary, err := cs.Summary(tctx)
	if err != nil {
		uc.metrics.RecordError(errorCategory(err))
		uc.l.Errorf(ctx, "uc.GetSummary: session=%s: %v", sessionID, err)
		return session.SummaryOutput{}, err
	}
	return session.SummaryOutput{SessionID: sessionID, Summary: summary}, nil
}

func (uc *implUseCase) GetTranscript(ctx context.Context, sessionID string) (session.TranscriptOutput, error) {
	if uc.archive == nil {
		return session.TranscriptOutput{}, session.ErrArchiveDisabled
	}

	turns, err := uc.archive.ListTurns(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTranscript: %v", err)
		return session.TranscriptOutput{}, err
	}
	if len(turns) == 0 {
		if _, err := uc.registry.Record(ctx, sessionID); err != nil {
			return session.TranscriptOutput{}, err
		}
	}
	return session.TranscriptOutput{SessionID: sessionID, Messages: turns}, nil
}

// archiveTurns is best-effort: a failed write is logged and the turn still succeeds.
func (uc *implUseCase) archiveTurns(ctx context.Context, sessionID string, turns []model.Turn) {
	if uc.archive == nil {
		return
	}
	if err := uc.archive.SaveTurns(ctx, sessionID, turns); err != nil {
		uc.l.Warnf(ctx, "uc.Chat.archiveTurns: session=%s: %v", sessionID, err)
	}
}

func errorCategory(err error) string {
	switch {
	case errors.Is(err, chat.ErrAuthentication):
		return metrics.CategoryAuthentication
	case errors.Is(err, chat.ErrRateLimitExceeded):
		return metrics.CategoryRateLimit
	case errors.Is(err, chat.ErrGenerationTimeout):
		return metrics.CategoryTimeout
	case errors.Is(err, chat.ErrTurnCancelled):
		return metrics.CategoryBusy
	case errors.Is(err, chat.ErrUpstreamGeneration):
		return metrics.CategoryGeneration
	default:
		return metrics.CategoryOther
	}
}
