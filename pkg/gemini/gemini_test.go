package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("expected default model, got %s", cfg.Model)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestToContents_MapsRoles(t *testing.T) {
	contents := toContents([]Message{
		{Role: RoleUser, Text: "안녕하세요?"},
		{Role: RoleModel, Text: "general 안녕하세요?"},
		{Role: "unknown", Text: "x"},
	})

	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	if contents[0].Role != string(genai.RoleUser) || contents[1].Role != string(genai.RoleModel) {
		t.Errorf("unexpected roles: %s, %s", contents[0].Role, contents[1].Role)
	}
	if contents[2].Role != string(genai.RoleUser) {
		t.Errorf("unknown role should map to user, got %s", contents[2].Role)
	}
	if contents[1].Parts[0].Text != "general 안녕하세요?" {
		t.Errorf("unexpected text %q", contents[1].Parts[0].Text)
	}
}

func TestToConfig(t *testing.T) {
	cfg := toConfig(&Request{SystemInstruction: "be brief", Temperature: 0.7, MaxTokens: 300})
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "be brief" {
		t.Error("system instruction not set")
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.7) {
		t.Error("temperature not set")
	}
	if cfg.MaxOutputTokens != 300 {
		t.Errorf("expected 300 max tokens, got %d", cfg.MaxOutputTokens)
	}

	empty := toConfig(&Request{})
	if empty.SystemInstruction != nil || empty.Temperature != nil || empty.MaxOutputTokens != 0 {
		t.Error("expected zero config for empty request")
	}
}
