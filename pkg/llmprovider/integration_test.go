package llmprovider_test

import (
	"context"
	"testing"

	"emotion-assistant/config"
	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration,
// provider initialization, and manager work together. No request is sent.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "test-groq-key", Model: "llama3-70b-8192", Timeout: "30s"},
			{Name: "openai", Enabled: false, Priority: 2, APIKey: "test-openai-key", Model: "gpt-4o"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "45s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[1].Name() != "gemini" {
		t.Errorf("Expected [groq gemini], got [%s %s]", providers[0].Name(), providers[1].Name())
	}
	if providers[0].Model() != "llama3-70b-8192" {
		t.Errorf("unexpected model %s", providers[0].Model())
	}

	managerCfg := llmprovider.ManagerConfig(cfg)
	if managerCfg.MaxTotalTimeout.String() != "45s" || managerCfg.RetryDelay.String() != "1s" {
		t.Errorf("durations not parsed: %+v", managerCfg)
	}

	if llmprovider.NewManager(providers, managerCfg, log.NewNop()) == nil {
		t.Fatal("Manager should not be nil")
	}
}

func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat"},
			}},
		},
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "no providers", cfg: &config.LLMConfig{}, wantErr: true},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Priority: 1, APIKey: "k", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "cohere", Enabled: true, Priority: 1, APIKey: "k", Model: "command-r-plus"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
