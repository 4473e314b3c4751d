package classifier

import (
	"context"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/llmprovider"
)

// Backend is the remote categorical model. It returns the raw, fully
// accumulated text of one call.
type Backend interface {
	Generate(ctx context.Context, prompt string, history []model.ChatMessage, preamble string) (string, error)
}

// LLM is satisfied by *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type llmBackend struct {
	llm LLM
}

// NewLLMBackend runs classification through the provider manager.
func NewLLMBackend(llm LLM) Backend {
	return &llmBackend{llm: llm}
}

func (b *llmBackend) Generate(ctx context.Context, prompt string, history []model.ChatMessage, preamble string) (string, error) {
	system := llmprovider.NewTextMessage(llmprovider.RoleSystem, preamble)

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, llmprovider.NewTextMessage(string(m.Role), m.Content))
	}
	messages = append(messages, llmprovider.NewTextMessage(llmprovider.RoleUser, prompt))

	resp, err := b.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
		Temperature:       ClassifierTemperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
