package llmprovider

import (
	"context"

	"emotion-assistant/pkg/gemini"
	"emotion-assistant/pkg/openai"
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
		Messages:    toGeminiMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, resp.Text),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// OpenAIAdapter adapts pkg/openai (any OpenAI-compatible endpoint) to Provider.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reporting itself under name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		Messages:    toOpenAIMessages(req.SystemInstruction, req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      NewTextMessage(RoleAssistant, resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAIAdapter) Name() string  { return a.name }
func (a *OpenAIAdapter) Model() string { return a.client.Model() }

// Gemini has no system role inside contents; those turns are sent as user turns.
func toGeminiMessages(messages []Message) []gemini.Message {
	out := make([]gemini.Message, 0, len(messages))
	for _, m := range messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		out = append(out, gemini.Message{Role: role, Text: m.Text()})
	}
	return out
}

func toOpenAIMessages(system *Message, messages []Message) []openai.Message {
	out := make([]openai.Message, 0, len(messages)+1)
	if system != nil {
		out = append(out, openai.Message{Role: openai.RoleSystem, Content: system.Text()})
	}
	for _, m := range messages {
		role := openai.RoleUser
		switch m.Role {
		case RoleAssistant:
			role = openai.RoleAssistant
		case RoleSystem:
			role = openai.RoleSystem
		}
		out = append(out, openai.Message{Role: role, Content: m.Text()})
	}
	return out
}
