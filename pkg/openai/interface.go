package openai

import "context"

// IOpenAI is a chat-completions client for any OpenAI-compatible endpoint
// (OpenAI, Groq, DeepSeek, Qwen compatible mode).
type IOpenAI interface {
	// GenerateContent streams a completion and returns it once fully accumulated.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new OpenAI-compatible client
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
