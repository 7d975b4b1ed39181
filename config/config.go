// Package config loads ContentStudio settings from a TOML file with
// environment variable overrides. The serve and tools commands need no
// credential; chat requires the API key for the selected provider.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds every runtime setting.
type Config struct {
	Provider      string  `toml:"provider"`       // "openai" or "anthropic"
	Model         string  `toml:"model"`          // provider model id; empty picks the provider default
	Temperature   float64 `toml:"temperature"`    // sampling temperature
	MaxIterations int     `toml:"max_iterations"` // model rounds per user turn
	OutputDir     string  `toml:"output_dir"`     // artifact directory
	LogLevel      string  `toml:"log_level"`      // debug, info, warn, error
	LogFormat     string  `toml:"log_format"`     // text or json

	Server ServerConfig `toml:"server"`

	// APIKey is resolved from the environment, never from the file.
	APIKey string `toml:"-"`
}

// ServerConfig describes how chat spawns the tool server.
type ServerConfig struct {
	Command string   `toml:"command"` // empty means re-exec self
	Args    []string `toml:"args"`
}

// ConfigurationError marks startup misconfiguration, reported before any
// tool call happens.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Provider:      "openai",
		Temperature:   0.7,
		MaxIterations: 10,
		OutputDir:     "content_outputs",
		LogLevel:      "info",
		LogFormat:     "text",
		Server: ServerConfig{
			Args: []string{"serve"},
		},
	}
}

// DefaultPath returns ~/.contentstudio/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".contentstudio", "config.toml")
}

// Load reads the TOML file at path (if it exists) over the defaults and
// applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, &ConfigurationError{Message: fmt.Sprintf("failed to parse config %s: %v", path, err)}
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv layers CONTENTSTUDIO_* overrides and resolves the API key.
func (c *Config) applyEnv() {
	if v := os.Getenv("CONTENTSTUDIO_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("CONTENTSTUDIO_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CONTENTSTUDIO_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("CONTENTSTUDIO_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CONTENTSTUDIO_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv("CONTENTSTUDIO_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxIterations = n
		}
	}

	switch strings.ToLower(c.Provider) {
	case "anthropic":
		c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	default:
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Provider) {
	case "openai", "anthropic":
	default:
		return &ConfigurationError{Message: fmt.Sprintf("unknown provider %q (want openai or anthropic)", c.Provider)}
	}
	if c.MaxIterations < 1 {
		return &ConfigurationError{Message: "max_iterations must be at least 1"}
	}
	return nil
}

// RequireCredential fails when the selected provider has no API key.
// Called by chat only; serve and tools run credential-free.
func (c *Config) RequireCredential() error {
	if c.APIKey != "" {
		return nil
	}
	envVar := "OPENAI_API_KEY"
	if strings.ToLower(c.Provider) == "anthropic" {
		envVar = "ANTHROPIC_API_KEY"
	}
	return &ConfigurationError{Message: fmt.Sprintf("%s is not set; export it before starting a chat session", envVar)}
}
