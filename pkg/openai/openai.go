package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type openAIImpl struct {
	client  sdk.Client
	model   string
	timeout time.Duration
}

func newOpenAIImpl(cfg Config) *openAIImpl {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIImpl{
		client:  sdk.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// GenerateContent streams the completion and accumulates the deltas.
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	stream := o.client.Chat.Completions.NewStreaming(ctx, o.toParams(req))
	defer stream.Close()

	var (
		sb    strings.Builder
		usage Usage
	)
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) > 0 {
			sb.WriteString(chunk.Choices[0].Delta.Content)
		}
		if chunk.Usage.TotalTokens > 0 {
			usage = Usage{
				InputTokens:  int(chunk.Usage.PromptTokens),
				OutputTokens: int(chunk.Usage.CompletionTokens),
				TotalTokens:  int(chunk.Usage.TotalTokens),
			}
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("openai: stream completion: %w", err)
	}

	if sb.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{Content: sb.String(), Usage: usage}, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) toParams(req *Request) sdk.ChatCompletionNewParams {
	params := sdk.ChatCompletionNewParams{
		Model:    sdk.ChatModel(o.model),
		Messages: toMessages(req.Messages),
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(req.MaxTokens))
	}
	return params
}

func toMessages(messages []Message) []sdk.ChatCompletionMessageParamUnion {
	out := make([]sdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, sdk.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, sdk.AssistantMessage(m.Content))
		default:
			out = append(out, sdk.UserMessage(m.Content))
		}
	}
	return out
}
