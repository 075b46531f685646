package chat

import (
	"context"

	"ai-therapist/pkg/llmprovider"
)

// LLMUpstream opens conversations over an llmprovider Generator (usually the Manager).
type LLMUpstream struct {
	gen llmprovider.Generator
	cfg llmprovider.ConversationConfig
}

// NewLLMUpstream returns an Upstream whose conversations share cfg.
func NewLLMUpstream(gen llmprovider.Generator, cfg llmprovider.ConversationConfig) *LLMUpstream {
	return &LLMUpstream{gen: gen, cfg: cfg}
}

// Open starts an empty conversation.
func (u *LLMUpstream) Open(ctx context.Context) (Conversation, error) {
	return &llmConversation{conv: llmprovider.NewConversation(u.gen, u.cfg)}, nil
}

type llmConversation struct {
	conv *llmprovider.Conversation
}

func (c *llmConversation) Send(ctx context.Context, prompt string) (Reply, error) {
	resp, err := c.conv.Send(ctx, prompt)
	if err != nil {
		return Reply{}, err
	}

	reply := Reply{Text: resp.Content.Text()}
	if resp.Usage != nil {
		reply.Usage = Usage{InputTokens: resp.Usage.InputTokens, OutputTokens: resp.Usage.OutputTokens}
	}
	return reply, nil
}

func (c *llmConversation) Close() error {
	return c.conv.Close()
}
