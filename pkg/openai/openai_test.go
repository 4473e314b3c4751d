package openai

import (
	"errors"
	"testing"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	client, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("expected %s, got %s", DefaultModel, client.Model())
	}
}

func TestBaseURLFor(t *testing.T) {
	if BaseURLFor("groq") != "https://api.groq.com/openai/v1" {
		t.Errorf("unexpected groq url %q", BaseURLFor("groq"))
	}
	if BaseURLFor("qwen") != BaseURLFor("alibaba") {
		t.Error("qwen and alibaba should share an endpoint")
	}
	if BaseURLFor("nope") != "" {
		t.Error("unknown provider should have no url")
	}
}

func TestToMessages_KeepsOrder(t *testing.T) {
	msgs := toMessages([]Message{
		{Role: RoleSystem, Content: "s"},
		{Role: RoleUser, Content: "u"},
		{Role: RoleAssistant, Content: "a"},
	})
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].OfSystem == nil || msgs[1].OfUser == nil || msgs[2].OfAssistant == nil {
		t.Error("roles were not mapped to the matching union members")
	}
}
