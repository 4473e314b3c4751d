package gemini

import (
	"errors"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("gemini: api key is required")
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// Config holds the client settings.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Validate fills defaults and rejects configs that cannot reach the API.
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

// Message is one turn of the conversation. Role is RoleUser or RoleModel.
type Message struct {
	Role string
	Text string
}

// Request is a single generation call.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Response carries the concatenated text of the first candidate.
type Response struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
