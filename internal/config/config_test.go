package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"ai_api_key": "key-a",
		"rubric_api_key": "key-b",
		"analyzer_timeout": 30,
		"port": 9090,
		"disable_rubric": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "key-a", cfg.AIKey)
	assert.Equal(t, "key-b", cfg.RubricKey)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.DisableRubric)
	assert.False(t, cfg.DisableAI)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative timeout", Config{AnalyzerTimeout: -1}},
		{"negative cache ttl", Config{CacheTTL: -5}},
		{"port out of range", Config{Port: 70000}},
		{"missing vocab file", Config{VocabPath: "/nonexistent/vocab.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)

			var ce *ConfigurationError
			assert.ErrorAs(t, err, &ce)
		})
	}
}

func TestValidate_ZeroValueOK(t *testing.T) {
	cfg := Config{}
	assert.NoError(t, cfg.Validate())
}

func TestResolveAIKey_ConfigWins(t *testing.T) {
	t.Setenv("AI_GEMINI_API_KEY", "env-key")

	cfg := Config{AIKey: "config-key"}
	assert.Equal(t, "config-key", cfg.ResolveAIKey())
}

func TestResolveAIKey_EnvFallbackOrder(t *testing.T) {
	t.Setenv("AI_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg := Config{}
	assert.Equal(t, "google-key", cfg.ResolveAIKey())

	t.Setenv("AI_GEMINI_API_KEY", "dedicated-key")
	assert.Equal(t, "dedicated-key", cfg.ResolveAIKey())
}

func TestResolveRubricKey_DedicatedEnv(t *testing.T) {
	t.Setenv("RUBRIC_GEMINI_API_KEY", "rubric-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := Config{}
	assert.Equal(t, "rubric-key", cfg.ResolveRubricKey())
}

func TestResolveKeys_Unset(t *testing.T) {
	t.Setenv("AI_GEMINI_API_KEY", "")
	t.Setenv("RUBRIC_GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Config{}
	assert.Empty(t, cfg.ResolveAIKey())
	assert.Empty(t, cfg.ResolveRubricKey())
}
