package oracle

import (
	"os"
	"strconv"
)

// Provider identifies the oracle backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// Config holds all settings for the oracle subsystem.
type Config struct {
	Provider    Provider
	APIKey      string // Gemini credential
	Model       string
	Endpoint    string // Ollama only
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns the Gemini-backed defaults.
func DefaultConfig() Config {
	return Config{
		Provider:    ProviderGemini,
		Model:       "",
		Endpoint:    "http://localhost:11434",
		TimeoutMs:   30000,
		Temperature: 0.4,
		MaxTokens:   1024,
	}
}

// LoadConfig reads oracle configuration from environment variables,
// falling back to defaults for any unset value. The Gemini credential is
// read from GOOGLE_API_KEY.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LEETCOACH_ORACLE_PROVIDER"); v != "" {
		cfg.Provider = Provider(v)
	}
	cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	if v := os.Getenv("LEETCOACH_ORACLE_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LEETCOACH_ORACLE_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LEETCOACH_ORACLE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LEETCOACH_ORACLE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	if cfg.Model == "" {
		switch cfg.Provider {
		case ProviderOllama:
			cfg.Model = "llama3.2"
		default:
			cfg.Model = "gemini-2.0-flash"
		}
	}

	return cfg
}
