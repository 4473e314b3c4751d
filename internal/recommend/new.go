package recommend

import (
	"context"
	"time"

	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/log"
)

// Resolver derives a mood, a food and a reason from an utterance.
type Resolver interface {
	Recommend(ctx context.Context, ec EmotionContext) (Recommendation, error)
}

// Backend is the generative model answering the recommendation prompt.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// LLM is satisfied by *llmprovider.Manager.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implResolver struct {
	backend      Backend
	loc          *time.Location
	recentWindow int
	now          func() time.Time
	l            log.Logger
}

var _ Resolver = (*implResolver)(nil)

// New creates a Resolver. recentWindow bounds how many recent foods are
// excluded; values below 1 use DefaultRecentWindow.
func New(backend Backend, loc *time.Location, recentWindow int, l log.Logger) Resolver {
	if recentWindow < 1 {
		recentWindow = DefaultRecentWindow
	}
	return &implResolver{
		backend:      backend,
		loc:          loc,
		recentWindow: recentWindow,
		now:          time.Now,
		l:            l,
	}
}

type llmBackend struct {
	llm LLM
}

// NewLLMBackend sends the prompt as a single user message.
func NewLLMBackend(llm LLM) Backend {
	return &llmBackend{llm: llm}
}

func (b *llmBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.NewTextMessage(llmprovider.RoleUser, prompt)},
		Temperature: RecommendTemperature,
		MaxTokens:   RecommendMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
