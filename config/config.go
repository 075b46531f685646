package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned by Load when no upstream model credential is configured.
var ErrMissingCredentials = errors.New("missing upstream model credentials: set GEMINI_API_KEY or llm.providers")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// Conversation
	Gemini  GeminiConfig
	LLM     LLMConfig
	Session SessionConfig
	Safety  SafetyConfig

	// Retrieval
	RAG         RAGConfig
	Qdrant      QdrantConfig
	Voyage      VoyageConfig
	HuggingFace HuggingFaceConfig

	// Storage & accounting
	Postgres PostgresConfig
	Metrics  MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type SessionConfig struct {
	MaxHistory      int
	Timeout         time.Duration
	CleanupInterval time.Duration
	ChatTimeout     time.Duration
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

type SafetyConfig struct {
	Enabled bool
}

type RAGConfig struct {
	NResults      int
	BatchSize     int
	Datasets      []string
	MaxPerDataset int
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type HuggingFaceConfig struct {
	BaseURL string
	Token   string
}

type PostgresConfig struct {
	DSN string
}

type MetricsConfig struct {
	InputPricePerMillion  string
	OutputPricePerMillion string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	if level := viper.GetString("log_level"); level != "" {
		cfg.Logger.Level = strings.ToLower(level)
	}

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	if origins := viper.GetString("cors_origins"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")

	// Conversation
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	cfg.Session.MaxHistory = viper.GetInt("session.max_history")
	if v := viper.GetInt("max_conversation_history"); v > 0 {
		cfg.Session.MaxHistory = v
	}
	cfg.Session.Timeout = time.Duration(viper.GetInt("session.timeout_hours")) * time.Hour
	if v := viper.GetInt("session_timeout_hours"); v > 0 {
		cfg.Session.Timeout = time.Duration(v) * time.Hour
	}
	cfg.Session.CleanupInterval = viper.GetDuration("session.cleanup_interval")
	cfg.Session.ChatTimeout = viper.GetDuration("session.chat_timeout")
	cfg.Session.Temperature = viper.GetFloat64("session.temperature")
	cfg.Session.TopP = viper.GetFloat64("session.top_p")
	cfg.Session.TopK = viper.GetInt("session.top_k")
	cfg.Session.MaxOutputTokens = viper.GetInt("session.max_output_tokens")
	cfg.Safety.Enabled = viper.GetBool("safety.enabled")

	// Retrieval
	cfg.RAG.NResults = viper.GetInt("rag.n_results")
	if v := viper.GetInt("rag_n_results"); v > 0 {
		cfg.RAG.NResults = v
	}
	cfg.RAG.BatchSize = viper.GetInt("rag.batch_size")
	if v := viper.GetInt("batch_size"); v > 0 {
		cfg.RAG.BatchSize = v
	}
	cfg.RAG.Datasets = splitList(viper.GetString("rag.datasets"))
	cfg.RAG.MaxPerDataset = viper.GetInt("rag.max_per_dataset")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if dbPath := viper.GetString("vector_db_path"); dbPath != "" {
		cfg.Qdrant.URL = dbPath
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	cfg.Voyage.BaseURL = viper.GetString("voyage.base_url")
	if model := viper.GetString("embedding_model"); model != "" {
		cfg.Voyage.Model = model
	}

	cfg.HuggingFace.BaseURL = viper.GetString("huggingface.base_url")
	cfg.HuggingFace.Token = viper.GetString("huggingface.token")

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	cfg.Metrics.InputPricePerMillion = viper.GetString("metrics.input_price_per_million")
	cfg.Metrics.OutputPricePerMillion = viper.GetString("metrics.output_price_per_million")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Providers = loadProviders()

	// Without an explicit provider list the chat model is the configured Gemini model.
	if len(cfg.LLM.Providers) == 0 && cfg.Gemini.APIKey != "" {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "gemini",
			Enabled:  true,
			Priority: 1,
			APIKey:   cfg.Gemini.APIKey,
			Model:    cfg.Gemini.Model,
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_minute", 60)

	viper.SetDefault("gemini.model", "gemini-2.5-pro")

	viper.SetDefault("session.max_history", 10)
	viper.SetDefault("session.timeout_hours", 24)
	viper.SetDefault("session.cleanup_interval", "1h")
	viper.SetDefault("session.chat_timeout", "60s")
	viper.SetDefault("session.temperature", 0.7)
	viper.SetDefault("session.top_p", 0.8)
	viper.SetDefault("session.top_k", 40)
	viper.SetDefault("session.max_output_tokens", 0)
	viper.SetDefault("safety.enabled", false)

	viper.SetDefault("rag.n_results", 3)
	viper.SetDefault("rag.batch_size", 100)
	viper.SetDefault("rag.max_per_dataset", 0)

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "therapy_conversations")
	viper.SetDefault("qdrant.vector_size", 1024)
	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("huggingface.base_url", "https://datasets-server.huggingface.co")

	viper.SetDefault("metrics.input_price_per_million", "1.25")
	viper.SetDefault("metrics.output_price_per_million", "10")

	// A chat turn is never retried automatically.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "0s")
}

func loadProviders() []ProviderConfig {
	if !viper.IsSet("llm.providers") {
		return nil
	}
	list, ok := viper.Get("llm.providers").([]interface{})
	if !ok {
		return nil
	}

	var providers []ProviderConfig
	for _, p := range list {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(m, "name"),
			Enabled:  getBoolFromMap(m, "enabled"),
			Priority: getIntFromMap(m, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
			BaseURL:  getStringFromMap(m, "base_url"),
			Model:    getStringFromMap(m, "model"),
			Timeout:  getStringFromMap(m, "timeout"),
		})
	}
	return providers
}

// validateLLMConfig checks the provider list. Missing credentials are fatal.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return ErrMissingCredentials
	}

	enabledWithKey := 0
	priorities := make(map[int]bool)
	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorities[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorities[provider.Priority] = true
		if provider.APIKey != "" {
			enabledWithKey++
		}
	}

	if enabledWithKey == 0 {
		return ErrMissingCredentials
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList accepts "a,b" or a JSON-ish "[\"a\", \"b\"]" list as used by CORS_ORIGINS.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.Trim(strings.TrimSpace(item), `"'`)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if str, ok := m[key].(string); ok {
		return str
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
