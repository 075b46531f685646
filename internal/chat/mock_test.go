package chat

import (
	"context"
	"sync"

	"ai-therapist/internal/rag"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// fakeUpstream hands out fakeConversations that share its script.
type fakeUpstream struct {
	mu      sync.Mutex
	opened  []*fakeConversation
	err     error // returned by the next Send, then cleared
	block   chan struct{}
	started chan struct{}
}

func (u *fakeUpstream) Open(ctx context.Context) (Conversation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c := &fakeConversation{up: u}
	u.opened = append(u.opened, c)
	return c, nil
}

func (u *fakeUpstream) failNext(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.err = err
}

func (u *fakeUpstream) last() *fakeConversation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.opened[len(u.opened)-1]
}

type fakeConversation struct {
	up      *fakeUpstream
	mu      sync.Mutex
	prompts []string
	closed  bool
}

func (c *fakeConversation) Send(ctx context.Context, prompt string) (Reply, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	if c.up.started != nil {
		c.up.started <- struct{}{}
	}
	if c.up.block != nil {
		select {
		case <-c.up.block:
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		}
	}

	c.up.mu.Lock()
	err := c.up.err
	c.up.err = nil
	c.up.mu.Unlock()
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: "I hear you.", Usage: Usage{InputTokens: 10, OutputTokens: 3}}, nil
}

func (c *fakeConversation) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConversation) sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}

type fakeRetriever struct {
	examples []rag.Example
	lastN    int
}

func (r *fakeRetriever) Retrieve(ctx context.Context, query string, n int) []rag.Example {
	r.lastN = n
	if n < len(r.examples) {
		return r.examples[:n]
	}
	return r.examples
}

func example(source, text string, distance float64) rag.Example {
	return rag.Example{Text: text, Metadata: map[string]any{rag.MetadataSource: source}, Distance: distance}
}
