package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
	"ai-therapist/pkg/log"
)

// Session is one therapeutic conversation: bounded turn history plus the upstream
// handle that carries the model-side context. At most one turn is in flight at a
// time; concurrent callers queue on the turn slot.
type Session struct {
	cfg       Config
	upstream  Upstream
	retriever Retriever
	l         log.Logger
	now       func() time.Time

	slot       chan struct{}
	generating atomic.Bool

	mu      sync.RWMutex
	history []model.Turn
	conv    Conversation
	closed  bool
}

// Option customises a Session.
type Option func(*Session)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New opens the upstream conversation and returns an idle Session. retriever may be nil.
func New(ctx context.Context, cfg Config, upstream Upstream, retriever Retriever, l log.Logger, opts ...Option) (*Session, error) {
	if upstream == nil {
		return nil, errors.New("chat: upstream is required")
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 10
	}
	if cfg.DefaultExamples <= 0 {
		cfg.DefaultExamples = 3
	}

	s := &Session{
		cfg:       cfg,
		upstream:  upstream,
		retriever: retriever,
		l:         l,
		now:       time.Now,
		slot:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	conv, err := upstream.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("chat: open upstream conversation: %w", err)
	}
	s.conv = conv
	return s, nil
}

// SendTurn runs one user turn through retrieval, prompt construction and the upstream.
// The user turn is recorded before the upstream call and stays recorded if it fails.
func (s *Session) SendTurn(ctx context.Context, in TurnInput) (TurnOutput, error) {
	if strings.TrimSpace(in.Message) == "" {
		return TurnOutput{}, ErrEmptyMessage
	}

	if err := s.acquire(ctx); err != nil {
		return TurnOutput{}, err
	}
	defer s.release()

	conv, err := s.conversation(ctx)
	if err != nil {
		return TurnOutput{}, err
	}

	var examples []rag.Example
	var sources []string
	if in.UseRAG && s.retriever != nil {
		n := in.ExampleCount
		if n <= 0 {
			n = s.cfg.DefaultExamples
		}
		examples = s.retriever.Retrieve(ctx, in.Message, n)
		for _, ex := range examples {
			sources = append(sources, ex.Source())
		}
	}

	prompt := buildPrompt(examples, s.window(), in.Message)
	s.appendTurn(model.RoleUser, in.Message)

	reply, err := conv.Send(ctx, prompt)
	if err != nil {
		s.l.Warnf(ctx, "chat.SendTurn: upstream error: %v", err)
		return TurnOutput{}, translateError(err)
	}

	ts := s.appendTurn(model.RoleAssistant, reply.Text)

	return TurnOutput{
		Response:    reply.Text,
		SourcesUsed: sources,
		Timestamp:   ts,
		Usage:       reply.Usage,
	}, nil
}

// Summary asks the model, on the same conversation, to summarise the history window.
func (s *Session) Summary(ctx context.Context) (string, error) {
	if err := s.acquire(ctx); err != nil {
		return "", err
	}
	defer s.release()

	window := s.window()
	if len(window) == 0 {
		return NothingToSummarize, nil
	}

	conv, err := s.conversation(ctx)
	if err != nil {
		return "", err
	}

	reply, err := conv.Send(ctx, buildSummaryPrompt(window))
	if err != nil {
		s.l.Warnf(ctx, "chat.Summary: upstream error: %v", err)
		return "", fmt.Errorf("%w: %w", ErrUpstreamGeneration, err)
	}
	return reply.Text, nil
}

// Reset clears the history and drops the upstream handle; a fresh one is opened on the next turn.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	s.mu.Lock()
	conv := s.conv
	s.conv = nil
	s.history = nil
	s.mu.Unlock()

	if conv != nil {
		if err := conv.Close(); err != nil {
			s.l.Warnf(ctx, "chat.Reset: close conversation: %v", err)
		}
	}
	return nil
}

// History returns a copy of the retained turns, oldest first.
func (s *Session) History() []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Turn, len(s.history))
	copy(out, s.history)
	return out
}

// State reports whether a turn is in flight.
func (s *Session) State() State {
	if s.generating.Load() {
		return StateGenerating
	}
	return StateIdle
}

// Close releases the upstream handle. Turns after Close fail with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	conv := s.conv
	s.conv = nil
	s.mu.Unlock()

	if conv != nil {
		return conv.Close()
	}
	return nil
}

func (s *Session) acquire(ctx context.Context) error {
	select {
	case s.slot <- struct{}{}:
		s.generating.Store(true)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrTurnCancelled, ctx.Err())
	}
}

func (s *Session) release() {
	s.generating.Store(false)
	<-s.slot
}

// conversation returns the live handle, reopening it after a Reset. Caller holds the slot.
func (s *Session) conversation(ctx context.Context) (Conversation, error) {
	s.mu.RLock()
	conv, closed := s.conv, s.closed
	s.mu.RUnlock()

	if closed {
		return nil, ErrSessionClosed
	}
	if conv != nil {
		return conv, nil
	}

	conv, err := s.upstream.Open(ctx)
	if err != nil {
		return nil, translateError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		conv.Close()
		return nil, ErrSessionClosed
	}
	s.conv = conv
	return conv, nil
}

// window is the prompt slice: the most recent MaxHistory turns.
func (s *Session) window() []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.history) - s.cfg.MaxHistory
	if start < 0 {
		start = 0
	}
	out := make([]model.Turn, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

func (s *Session) appendTurn(role model.Role, content string) time.Time {
	ts := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, model.Turn{Role: role, Content: content, Timestamp: ts})
	if limit := 2 * s.cfg.MaxHistory; len(s.history) > limit {
		s.history = append([]model.Turn(nil), s.history[len(s.history)-limit:]...)
	}
	return ts
}
