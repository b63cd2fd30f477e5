package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{
		"LEETCOACH_ORACLE_PROVIDER", "LEETCOACH_ORACLE_MODEL",
		"LEETCOACH_ORACLE_ENDPOINT", "LEETCOACH_ORACLE_TIMEOUT_MS",
		"LEETCOACH_ORACLE_LOG_CALLS", "GOOGLE_API_KEY",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_OllamaDefaults(t *testing.T) {
	t.Setenv("LEETCOACH_ORACLE_PROVIDER", "ollama")
	t.Setenv("LEETCOACH_ORACLE_MODEL", "")

	cfg := LoadConfig()
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("LEETCOACH_ORACLE_PROVIDER", "gemini")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("LEETCOACH_ORACLE_MODEL", "gemini-2.0-pro")
	t.Setenv("LEETCOACH_ORACLE_TIMEOUT_MS", "5000")
	t.Setenv("LEETCOACH_ORACLE_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.0-pro", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("LEETCOACH_ORACLE_TIMEOUT_MS", "-5")
	cfg := LoadConfig()
	assert.Equal(t, 30000, cfg.TimeoutMs)
}
