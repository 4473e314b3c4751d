package openai

import "time"

const (
	DefaultModel   = "gpt-4o"
	DefaultTimeout = 30 * time.Second

	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var defaultBaseURLs = map[string]string{
	"openai":   "https://api.openai.com/v1",
	"groq":     "https://api.groq.com/openai/v1",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// BaseURLFor returns the well-known endpoint of an OpenAI-compatible provider,
// or "" when the provider is unknown.
func BaseURLFor(provider string) string {
	return defaultBaseURLs[provider]
}
