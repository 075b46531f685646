package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"http://localhost:3000", []string{"http://localhost:3000"}},
		{"a, b ,,c", []string{"a", "b", "c"}},
		{`["http://a", "http://b"]`, []string{"http://a", "http://b"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := splitList(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestValidateLLMConfig(t *testing.T) {
	if err := validateLLMConfig(&LLMConfig{}); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}

	noKey := &LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}}}
	if err := validateLLMConfig(noKey); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials for keyless provider, got %v", err)
	}

	dup := &LLMConfig{Providers: []ProviderConfig{
		{Name: "gemini", Enabled: true, Priority: 1, Model: "m", APIKey: "k"},
		{Name: "deepseek", Enabled: true, Priority: 1, Model: "m", APIKey: "k"},
	}}
	if err := validateLLMConfig(dup); err == nil {
		t.Error("expected duplicate priority error")
	}

	ok := &LLMConfig{Providers: []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m", APIKey: "k"}}}
	if err := validateLLMConfig(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("MAX_CONVERSATION_HISTORY", "6")
	t.Setenv("SESSION_TIMEOUT_HOURS", "2")
	t.Setenv("CORS_ORIGINS", `["http://a","http://b"]`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Session.MaxHistory != 6 {
		t.Errorf("expected max history 6, got %d", cfg.Session.MaxHistory)
	}
	if cfg.Session.Timeout.Hours() != 2 {
		t.Errorf("expected 2h timeout, got %v", cfg.Session.Timeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.RAG.NResults != 3 || cfg.RAG.BatchSize != 100 {
		t.Errorf("unexpected rag defaults: %+v", cfg.RAG)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Model != "gemini-2.5-pro" {
		t.Errorf("expected synthesized gemini provider, got %+v", cfg.LLM.Providers)
	}
	if cfg.LLM.RetryAttempts != 1 || cfg.LLM.FallbackEnabled {
		t.Errorf("chat must not retry by default: %+v", cfg.LLM)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
