package llmprovider

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// GenAIAdapter serves Gemini models through the official google.golang.org/genai SDK.
type GenAIAdapter struct {
	client *genai.Client
	model  string
}

// NewGenAIAdapter creates a Gemini API backed SDK client.
func NewGenAIAdapter(ctx context.Context, apiKey, model string) (*GenAIAdapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GenAIAdapter{client: client, model: model}, nil
}

// GenerateContent implements Provider interface
func (a *GenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.RoleUser
		if msg.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text(), genai.Role(role)))
	}

	config := &genai.GenerateContentConfig{}
	if req.Temperature > 0 {
		config.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.TopP > 0 {
		config.TopP = genai.Ptr(float32(req.TopP))
	}
	if req.TopK > 0 {
		config.TopK = genai.Ptr(float32(req.TopK))
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.SystemInstruction != nil {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction.Text()}},
		}
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, classifyStatus(a.Name(), apiErr.Code, err)
		}
		var apiErrPtr *genai.APIError
		if errors.As(err, &apiErrPtr) {
			return nil, classifyStatus(a.Name(), apiErrPtr.Code, err)
		}
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	out := &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GenAIAdapter) Name() string {
	return "genai"
}

// Model returns model name
func (a *GenAIAdapter) Model() string {
	return a.model
}
