package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/metrics"
	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/safety"
	"ai-therapist/internal/session"
	"ai-therapist/internal/session/registry"
	"ai-therapist/pkg/log"
)

type fixture struct {
	uc       session.UseCase
	registry registry.Registry
	upstream *scriptedUpstream
	rag      *mockRAG
	archive  *mockArchive
	metrics  *metrics.Collector
}

func newFixture(t *testing.T, withArchive, withSafety bool) *fixture {
	t.Helper()

	f := &fixture{
		upstream: &scriptedUpstream{},
		rag: &mockRAG{examples: []rag.Example{
			{Text: "Example text A", Metadata: map[string]any{rag.MetadataSource: "A"}, Distance: 0.1},
			{Text: "Example text B", Metadata: map[string]any{rag.MetadataSource: "B"}, Distance: 0.2},
			{Text: "Example text C", Metadata: map[string]any{rag.MetadataSource: "C"}, Distance: 0.3},
		}},
		metrics: metrics.New(metrics.Pricing{}),
	}

	l := log.NewNop()
	f.registry = registry.New(l, func(ctx context.Context) (*chat.Session, error) {
		return chat.New(ctx, chat.Config{MaxHistory: 10, DefaultExamples: 3}, f.upstream, f.rag, l)
	})

	cfg := Config{ChatTimeout: time.Second, Metrics: f.metrics, Index: rag.LoadInput{MaxPerDataset: 10}}
	if withArchive {
		f.archive = &mockArchive{}
		cfg.Archive = f.archive
	}
	if withSafety {
		cfg.Safety = safety.New(l)
	}
	f.uc = New(l, f.registry, f.rag, cfg)
	return f
}

func TestChatScenario(t *testing.T) {
	f := newFixture(t, true, false)
	ctx := context.Background()

	created, err := f.uc.CreateSession(ctx, session.CreateInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.SessionID == "" || created.MessageCount != 0 || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected create output: %+v", created)
	}

	out, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "I feel anxious", UseRAG: true, ExampleCount: 2})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if out.Response == "" {
		t.Error("expected generated text")
	}
	if len(out.SourcesUsed) != 2 || out.SourcesUsed[0] != "A" || out.SourcesUsed[1] != "B" {
		t.Errorf("expected sources [A B], got %v", out.SourcesUsed)
	}
	if out.Safety != nil {
		t.Error("safety must be absent when screening is off")
	}

	history, err := f.uc.GetHistory(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(history.Messages) != 2 || history.Messages[0].Role != model.RoleUser || history.Messages[1].Role != model.RoleAssistant {
		t.Errorf("expected user then assistant, got %+v", history.Messages)
	}
	if !history.CreatedAt.Equal(created.CreatedAt) {
		t.Error("history must report the creation time")
	}

	rec, _ := f.registry.Record(ctx, created.SessionID)
	if rec.MessageCount != 1 {
		t.Errorf("expected message count 1, got %d", rec.MessageCount)
	}

	transcript, err := f.uc.GetTranscript(ctx, created.SessionID)
	if err != nil || len(transcript.Messages) != 2 || transcript.Messages[1].Content != out.Response {
		t.Errorf("expected both turns archived, got %+v / %v", transcript, err)
	}

	snap := f.metrics.Snapshot()
	if snap.ChatTurns != 1 || snap.InputTokens != 1000 || snap.SessionsCreated != 1 {
		t.Errorf("unexpected metrics: %+v", snap)
	}
}

func TestChat_WithoutRAGReturnsNilSources(t *testing.T) {
	f := newFixture(t, false, false)
	ctx := context.Background()
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	out, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "hello", UseRAG: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SourcesUsed != nil {
		t.Errorf("expected nil sources, got %v", out.SourcesUsed)
	}
}

func TestChat_UnknownSession(t *testing.T) {
	f := newFixture(t, false, false)

	_, err := f.uc.Chat(context.Background(), session.ChatInput{SessionID: "nonexistent", Message: "hello"})
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestChat_RateLimitThenRecovery(t *testing.T) {
	f := newFixture(t, true, false)
	ctx := context.Background()
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	f.upstream.queue(errors.New("429 Too Many Requests: rate limit exceeded"))
	_, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "hello"})
	if !errors.Is(err, chat.ErrRateLimitExceeded) {
		t.Fatalf("expected ErrRateLimitExceeded, got %v", err)
	}

	history, _ := f.uc.GetHistory(ctx, created.SessionID)
	if len(history.Messages) != 1 || history.Messages[0].Role != model.RoleUser {
		t.Fatalf("expected only the user turn, got %+v", history.Messages)
	}
	rec, _ := f.registry.Record(ctx, created.SessionID)
	if rec.MessageCount != 0 {
		t.Error("failed turns must not be counted")
	}
	if len(f.archive.turns[created.SessionID]) != 0 {
		t.Error("failed turns must not be archived")
	}
	if f.metrics.Snapshot().ChatErrors[metrics.CategoryRateLimit] != 1 {
		t.Error("rate limit must be recorded")
	}

	if _, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "hello again"}); err != nil {
		t.Fatalf("follow-up turn failed: %v", err)
	}
	history, _ = f.uc.GetHistory(ctx, created.SessionID)
	if len(history.Messages) != 3 {
		t.Errorf("expected 3 entries, got %d", len(history.Messages))
	}
}

func TestChat_ArchiveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, true, false)
	ctx := context.Background()
	f.archive.saveErr = errors.New("db down")
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	if _, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "hello"}); err != nil {
		t.Fatalf("archive errors must not fail the turn, got %v", err)
	}
}

func TestChat_SafetyScreening(t *testing.T) {
	f := newFixture(t, false, true)
	ctx := context.Background()
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	out, err := f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "I want to end my life"})
	if err != nil {
		t.Fatalf("crisis messages must still be answered, got %v", err)
	}
	if out.Safety == nil || !out.Safety.IsCrisis || out.Safety.CrisisType != safety.CrisisSuicide {
		t.Errorf("expected suicide assessment, got %+v", out.Safety)
	}
	if f.metrics.Snapshot().CrisisDetections != 1 {
		t.Error("crisis must be counted")
	}

	out, _ = f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "thanks, that helps"})
	if out.Safety == nil || out.Safety.IsCrisis {
		t.Errorf("expected non-crisis assessment, got %+v", out.Safety)
	}
}

func TestCreateSession_Errors(t *testing.T) {
	l := log.NewNop()

	t.Run("missing credentials", func(t *testing.T) {
		reg := registry.New(l, func(ctx context.Context) (*chat.Session, error) { return nil, session.ErrMissingCredentials })
		uc := New(l, reg, &mockRAG{}, Config{})
		if _, err := uc.CreateSession(context.Background(), session.CreateInput{}); !errors.Is(err, session.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("other failure", func(t *testing.T) {
		up := &scriptedUpstream{openErr: errors.New("dial tcp: refused")}
		reg := registry.New(l, func(ctx context.Context) (*chat.Session, error) {
			return chat.New(ctx, chat.Config{}, up, nil, l)
		})
		uc := New(l, reg, &mockRAG{}, Config{})
		_, err := uc.CreateSession(context.Background(), session.CreateInput{})
		if !errors.Is(err, session.ErrCreateFailed) || errors.Is(err, session.ErrMissingCredentials) {
			t.Errorf("expected ErrCreateFailed, got %v", err)
		}
	})
}

func TestDeleteSession(t *testing.T) {
	f := newFixture(t, false, false)
	ctx := context.Background()
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	if err := f.uc.DeleteSession(ctx, created.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.uc.DeleteSession(ctx, created.SessionID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on second delete, got %v", err)
	}
	if _, err := f.uc.GetHistory(ctx, created.SessionID); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("deleted session must not be reachable, got %v", err)
	}
}

func TestResetAndSummary(t *testing.T) {
	f := newFixture(t, false, false)
	ctx := context.Background()
	created, _ := f.uc.CreateSession(ctx, session.CreateInput{})

	summary, err := f.uc.GetSummary(ctx, created.SessionID)
	if err != nil || summary.Summary != chat.NothingToSummarize {
		t.Fatalf("expected sentinel summary, got %+v / %v", summary, err)
	}

	f.uc.Chat(ctx, session.ChatInput{SessionID: created.SessionID, Message: "hello"})
	summary, err = f.uc.GetSummary(ctx, created.SessionID)
	if err != nil || summary.Summary == chat.NothingToSummarize {
		t.Fatalf("expected a generated summary, got %+v / %v", summary, err)
	}

	if err := f.uc.ResetSession(ctx, created.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	history, _ := f.uc.GetHistory(ctx, created.SessionID)
	if len(history.Messages) != 0 {
		t.Errorf("expected empty history after reset, got %d", len(history.Messages))
	}

	if err := f.uc.ResetSession(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t, false, false)
		if _, err := f.uc.GetTranscript(ctx, "any"); !errors.Is(err, session.ErrArchiveDisabled) {
			t.Errorf("expected ErrArchiveDisabled, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newFixture(t, true, false)
		if _, err := f.uc.GetTranscript(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t, true, false)
		if _, err := f.uc.GetTranscript(ctx, "broken"); err == nil {
			t.Error("expected store error")
		}
	})
}

func TestListSessionsAndHealth(t *testing.T) {
	f := newFixture(t, false, false)
	ctx := context.Background()
	f.rag.stats = rag.Stats{DocumentCount: 12, CollectionName: "therapy_conversations"}

	f.uc.CreateSession(ctx, session.CreateInput{UserID: "a"})
	f.uc.CreateSession(ctx, session.CreateInput{UserID: "b"})

	list := f.uc.ListSessions(ctx)
	if len(list.Sessions) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(list.Sessions))
	}

	health := f.uc.Health(ctx)
	if health.ActiveSessions != 2 || health.RAG.DocumentCount != 12 {
		t.Errorf("unexpected health: %+v", health)
	}
}

func TestInitializeRag(t *testing.T) {
	f := newFixture(t, false, false)
	f.rag.result = rag.IndexResult{TotalIndexed: 20}

	result, err := f.uc.InitializeRag(context.Background())
	if err != nil || result.TotalIndexed != 20 {
		t.Fatalf("unexpected result: %+v / %v", result, err)
	}
	if f.rag.input.MaxPerDataset != 10 {
		t.Errorf("configured selection must be used, got %+v", f.rag.input)
	}

	f.rag.err = rag.ErrIndexingInProgress
	if _, err := f.uc.InitializeRag(context.Background()); !errors.Is(err, rag.ErrIndexingInProgress) {
		t.Errorf("expected ErrIndexingInProgress, got %v", err)
	}
}

func TestEvictionRemovesCreatedSessions(t *testing.T) {
	f := newFixture(t, false, false)
	ctx := context.Background()

	f.uc.CreateSession(ctx, session.CreateInput{})
	f.uc.CreateSession(ctx, session.CreateInput{})

	if n := f.registry.EvictExpired(ctx, 0); n != 2 {
		t.Errorf("expected 2 evictions, got %d", n)
	}
	if len(f.uc.ListSessions(ctx).Sessions) != 0 {
		t.Error("expected no sessions after eviction")
	}
}
