package llmprovider

import (
	"context"
	"sync"
)

// ConversationConfig fixes the generation settings of one conversation.
type ConversationConfig struct {
	SystemInstruction string
	Temperature       float64
	TopP              float64
	TopK              int
	MaxTokens         int

	// MaxMessages bounds the model-side history. Zero keeps everything.
	MaxMessages int
}

// Conversation is a stateful chat handle. Every successful Send appends the
// user message and the reply to the history replayed on the next Send; a failed
// Send leaves the history untouched.
type Conversation struct {
	gen Generator
	cfg ConversationConfig

	mu       sync.Mutex
	messages []Message
	closed   bool
}

// NewConversation opens a conversation over gen.
func NewConversation(gen Generator, cfg ConversationConfig) *Conversation {
	return &Conversation{gen: gen, cfg: cfg}
}

// Send submits text as the next user message.
func (c *Conversation) Send(ctx context.Context, text string) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConversationClosed
	}

	userMsg := TextMessage(RoleUser, text)
	msgs := make([]Message, 0, len(c.messages)+1)
	msgs = append(msgs, c.messages...)
	msgs = append(msgs, userMsg)

	req := &Request{
		Messages:    msgs,
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		TopK:        c.cfg.TopK,
		MaxTokens:   c.cfg.MaxTokens,
	}
	if c.cfg.SystemInstruction != "" {
		sys := TextMessage(RoleSystem, c.cfg.SystemInstruction)
		req.SystemInstruction = &sys
	}

	resp, err := c.gen.GenerateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	reply := resp.Content
	reply.Role = RoleAssistant
	c.messages = append(msgs, reply)
	c.trim()

	return resp, nil
}

// History returns a copy of the model-side history.
func (c *Conversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Close drops the history. Later Sends fail with ErrConversationClosed.
func (c *Conversation) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.messages = nil
	return nil
}

func (c *Conversation) trim() {
	if c.cfg.MaxMessages <= 0 || len(c.messages) <= c.cfg.MaxMessages {
		return
	}
	drop := len(c.messages) - c.cfg.MaxMessages
	// Keep the history starting on a user message.
	if drop%2 == 1 {
		drop++
	}
	c.messages = append([]Message(nil), c.messages[drop:]...)
}
