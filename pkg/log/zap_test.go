package log

import (
	"context"
	"testing"
)

func TestSplitKeyValues(t *testing.T) {
	tests := []struct {
		name    string
		arg     []any
		wantMsg string
		wantOK  bool
	}{
		{"plain message", []any{"hello"}, "", false},
		{"message with pairs", []any{"done", "provider", "groq", "attempt", 2}, "done", true},
		{"odd pair count", []any{"done", "provider"}, "", false},
		{"non string key", []any{"done", 1, "x"}, "", false},
		{"non string message", []any{42, "k", "v"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, _, ok := splitKeyValues(tt.arg)
			if ok != tt.wantOK || msg != tt.wantMsg {
				t.Errorf("splitKeyValues() = (%q, %v), want (%q, %v)", msg, ok, tt.wantMsg, tt.wantOK)
			}
		})
	}
}

func TestInit_DoesNotPanic(t *testing.T) {
	ctx := context.Background()
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON},
	} {
		l := Init(cfg)
		l.Debugf(ctx, "level %s", cfg.Level)
		l.Info(ctx, "key value call", "key", "value")
	}
	NewNop().Errorf(ctx, "discarded %d", 1)
}
