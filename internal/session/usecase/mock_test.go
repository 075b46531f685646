package usecase

import (
	"context"
	"errors"
	"sync"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/model"
	"ai-therapist/internal/rag"
)

// scriptedUpstream answers every prompt with a fixed reply unless an error is queued.
type scriptedUpstream struct {
	mu      sync.Mutex
	errs    []error
	prompts []string
	openErr error
}

func (u *scriptedUpstream) Open(ctx context.Context) (chat.Conversation, error) {
	if u.openErr != nil {
		return nil, u.openErr
	}
	return &scriptedConversation{up: u}, nil
}

func (u *scriptedUpstream) queue(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errs = append(u.errs, err)
}

type scriptedConversation struct {
	up *scriptedUpstream
}

func (c *scriptedConversation) Send(ctx context.Context, prompt string) (chat.Reply, error) {
	c.up.mu.Lock()
	defer c.up.mu.Unlock()

	c.up.prompts = append(c.up.prompts, prompt)
	if len(c.up.errs) > 0 {
		err := c.up.errs[0]
		c.up.errs = c.up.errs[1:]
		return chat.Reply{}, err
	}
	return chat.Reply{Text: "It sounds like you're carrying a lot right now.", Usage: chat.Usage{InputTokens: 1000, OutputTokens: 100}}, nil
}

func (c *scriptedConversation) Close() error { return nil }

type mockRAG struct {
	examples []rag.Example
	stats    rag.Stats
	result   rag.IndexResult
	err      error
	input    rag.LoadInput
}

func (m *mockRAG) Retrieve(ctx context.Context, query string, n int) []rag.Example {
	if n < len(m.examples) {
		return m.examples[:n]
	}
	return m.examples
}

func (m *mockRAG) GetStats(ctx context.Context) rag.Stats { return m.stats }

func (m *mockRAG) LoadAndIndex(ctx context.Context, input rag.LoadInput) (rag.IndexResult, error) {
	m.input = input
	return m.result, m.err
}

type mockArchive struct {
	mu      sync.Mutex
	turns   map[string][]model.Turn
	saveErr error
}

func (m *mockArchive) SaveTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.turns == nil {
		m.turns = make(map[string][]model.Turn)
	}
	m.turns[sessionID] = append(m.turns[sessionID], turns...)
	return nil
}

func (m *mockArchive) ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sessionID == "broken" {
		return nil, errors.New("db down")
	}
	return append([]model.Turn{}, m.turns[sessionID]...), nil
}
