package suggest

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	// PlaceholderAPIKey is the value shipped in the sample .env; it counts as no key.
	PlaceholderAPIKey = "your_api_key_here"

	defaultProvider      = ProviderGemini
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultGeminiAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIAPIURL  = "https://api.openai.com/v1"
	defaultTemperature   = 0.3
	defaultListenHost    = "0.0.0.0"
	defaultListenPort    = "8000"
	defaultSystemPrompt  = "You are an expert disaster management consultant."
	defaultAllowedOrigin = "*"
)

// Config is resolved once at startup and shared read-only by every request.
type Config struct {
	Provider       string
	APIKey         string
	Model          string
	APIURL         string
	Temperature    float32
	Timeout        time.Duration
	SystemPrompt   string
	ListenAddr     string
	AllowedOrigins []string
}

// ConfigFromEnv builds a Config using environment variables with safe defaults.
func ConfigFromEnv() Config {
	provider := strings.ToLower(pickEnv("SUGGEST_PROVIDER", defaultProvider))

	cfg := Config{
		Provider:       provider,
		APIKey:         resolveAPIKey(provider),
		Temperature:    defaultTemperature,
		SystemPrompt:   resolveSystemPrompt(),
		ListenAddr:     defaultListenHost + ":" + pickEnv("PORT", defaultListenPort),
		AllowedOrigins: parseList(os.Getenv("CORS_ALLOWED_ORIGINS"), defaultAllowedOrigin),
	}

	switch provider {
	case ProviderOpenAI:
		cfg.Model = pickEnv("SUGGEST_MODEL_NAME", defaultOpenAIModel)
		cfg.APIURL = pickEnv("SUGGEST_API_URL", defaultOpenAIAPIURL)
	default:
		cfg.Model = pickEnv("SUGGEST_MODEL_NAME", defaultGeminiModel)
		cfg.APIURL = pickEnv("SUGGEST_API_URL", defaultGeminiAPIURL)
	}

	if raw := strings.TrimSpace(os.Getenv("SUGGEST_TEMPERATURE")); raw != "" {
		if v, err := strconv.ParseFloat(raw, 32); err == nil && v >= 0 {
			cfg.Temperature = float32(v)
		}
	}

	if raw := strings.TrimSpace(os.Getenv("SUGGEST_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if addr := strings.TrimSpace(os.Getenv("SUGGEST_LISTEN_ADDR")); addr != "" {
		cfg.ListenAddr = addr
	}

	return cfg
}

// HasCredential reports whether a usable provider key is configured.
func (c Config) HasCredential() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

func resolveAPIKey(provider string) string {
	keys := []string{"SUGGEST_API_KEY"}
	switch provider {
	case ProviderOpenAI:
		keys = append(keys, "OPENAI_API_KEY")
	default:
		keys = append(keys, "GOOGLE_API_KEY", "GEMINI_API_KEY")
	}
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func resolveSystemPrompt() string {
	if prompt := strings.TrimSpace(os.Getenv("SUGGEST_SYSTEM_PROMPT")); prompt != "" {
		return prompt
	}
	if path := strings.TrimSpace(os.Getenv("SUGGEST_SYSTEM_PROMPT_PATH")); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if trimmed := strings.TrimSpace(string(data)); trimmed != "" {
				return trimmed
			}
		}
	}
	return defaultSystemPrompt
}

func parseList(raw string, fallback string) []string {
	if strings.TrimSpace(raw) == "" {
		raw = fallback
	}
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		if _, exists := seen[item]; exists {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func pickEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
