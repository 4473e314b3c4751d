package openai

import (
	"errors"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("openai: api key is required")
	ErrEmptyResponse = errors.New("openai: empty response")
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Message is one chat turn. Role is RoleSystem, RoleUser or RoleAssistant.
type Message struct {
	Role    string
	Content string
}

type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

type Response struct {
	Content string
	Usage   Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
