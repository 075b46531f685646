package registry

import (
	"context"
	"sync"

	"ai-therapist/internal/chat"
	"ai-therapist/pkg/log"
)

type stubUpstream struct {
	mu    sync.Mutex
	convs []*stubConversation
}

func (u *stubUpstream) Open(ctx context.Context) (chat.Conversation, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c := &stubConversation{}
	u.convs = append(u.convs, c)
	return c, nil
}

func (u *stubUpstream) closedCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, c := range u.convs {
		if c.isClosed() {
			n++
		}
	}
	return n
}

type stubConversation struct {
	mu     sync.Mutex
	closed bool
}

func (c *stubConversation) Send(ctx context.Context, prompt string) (chat.Reply, error) {
	return chat.Reply{Text: "ok"}, nil
}

func (c *stubConversation) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *stubConversation) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func stubFactory(up *stubUpstream) Factory {
	return func(ctx context.Context) (*chat.Session, error) {
		return chat.New(ctx, chat.Config{MaxHistory: 10}, up, nil, log.NewNop())
	}
}
