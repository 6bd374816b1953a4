// Package config provides configuration loading and API key resolution for
// the evaluator CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the evaluator configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Analyzer keys
	AIKey     string `json:"ai_api_key,omitempty"`     // Gemini key for the AI semantic analyzer
	RubricKey string `json:"rubric_api_key,omitempty"` // Gemini key for the rubric analyzer

	// Behavior
	VocabPath        string `json:"vocab_path,omitempty"`        // Path to a keyword vocabulary JSON file
	AnalyzerTimeout  int    `json:"analyzer_timeout,omitempty"`  // Per-analyzer timeout in seconds
	CacheTTL         int    `json:"cache_ttl,omitempty"`         // Cached evaluation lifetime in seconds
	DisableAI        bool   `json:"disable_ai,omitempty"`        // Skip the AI semantic analyzer
	DisableRubric    bool   `json:"disable_rubric,omitempty"`    // Skip the rubric analyzer
	Verbose          bool   `json:"verbose,omitempty"`           // Print detailed category breakdowns
	Port             int    `json:"port,omitempty"`              // HTTP server port
}

// ConfigurationError reports an invalid or unusable configuration value.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.AnalyzerTimeout < 0 {
		return &ConfigurationError{Field: "analyzer_timeout", Message: "must be non-negative"}
	}
	if c.CacheTTL < 0 {
		return &ConfigurationError{Field: "cache_ttl", Message: "must be non-negative"}
	}
	if c.Port < 0 || c.Port > 65535 {
		return &ConfigurationError{Field: "port", Message: "must be a valid TCP port"}
	}
	if c.VocabPath != "" {
		if _, err := os.Stat(c.VocabPath); os.IsNotExist(err) {
			return &ConfigurationError{Field: "vocab_path", Message: "file not found: " + c.VocabPath}
		}
	}
	return nil
}

// Timeout returns the per-analyzer timeout, or zero if unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.AnalyzerTimeout) * time.Second
}

// ResolveAIKey returns the API key for the AI semantic analyzer, checking the
// config value first and then the environment.
func (c *Config) ResolveAIKey() string {
	if c.AIKey != "" {
		return c.AIKey
	}
	return firstEnv("AI_GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY")
}

// ResolveRubricKey returns the API key for the rubric analyzer, checking the
// config value first and then the environment.
func (c *Config) ResolveRubricKey() string {
	if c.RubricKey != "" {
		return c.RubricKey
	}
	return firstEnv("RUBRIC_GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY")
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
