package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "llama3-70b-8192", Enabled: true, Priority: 1},
				{Name: "openai", Model: "gpt-4o", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "llama3-70b-8192", Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "llama3-70b-8192", Enabled: true, Priority: 1},
				{Name: "gemini", Model: "gemini-2.5-flash", Enabled: true, Priority: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("ASSISTANT_TEST_KEY", "secret-value")

	if got := expandEnvVar("${ASSISTANT_TEST_KEY}"); got != "secret-value" {
		t.Errorf("expected env value, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected literal passthrough, got %q", got)
	}
	if got := expandEnvVar(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test, ,http://b.test ")
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
	if splitList("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestEnvironmentIsProduction(t *testing.T) {
	if !(EnvironmentConfig{Name: "Production"}).IsProduction() {
		t.Error("expected production")
	}
	if (EnvironmentConfig{Name: "development"}).IsProduction() {
		t.Error("expected non-production")
	}
}

func TestSetDefaultsAppControlDisabled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	if viper.GetBool("app_control.enabled") {
		t.Error("app_control.enabled should default to false")
	}
}
