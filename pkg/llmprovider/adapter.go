package llmprovider

import (
	"context"
	"errors"

	"ai-therapist/pkg/gemini"
	"ai-therapist/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		TopP:        req.TopP,
		TopK:        req.TopK,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{Role: toGeminiRole(msg.Role), Parts: toGeminiParts(msg.Parts)}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.Name(), apiErr.StatusCode, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func toGeminiRole(role string) string {
	if role == RoleAssistant {
		return gemini.RoleModel
	}
	return gemini.RoleUser
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// OpenAICompatAdapter adapts pkg/openaicompat (deepseek, qwen, openai) to Provider.
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates an adapter reported under name.
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := &openaicompat.Request{
		Messages:    make([]openaicompat.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		TopP:        req.TopP,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		oaReq.Messages = append(oaReq.Messages, openaicompat.Message{
			Role:    openaicompat.RoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		oaReq.Messages = append(oaReq.Messages, openaicompat.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.CreateChatCompletion(ctx, oaReq)
	if err != nil {
		var apiErr *openaicompat.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.name, apiErr.StatusCode, err)
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, text),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
