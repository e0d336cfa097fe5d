package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	MistralAPIKey     string
	MistralBaseURL    string
	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	StaticDir         string
	AudioTmpDir       string
	ProviderTimeout   time.Duration
	Port              string
	LogLevel          slog.Level
	LogFormat         string
}

// MistralConfigured reports whether a Mistral API key is present.
func (c *Config) MistralConfigured() bool {
	return c.MistralAPIKey != ""
}

// ElevenLabsConfigured reports whether an ElevenLabs API key is present.
func (c *Config) ElevenLabsConfigured() bool {
	return c.ElevenLabsAPIKey != ""
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields. Provider keys are optional at load
// time: handlers report a configuration error when a key they need is missing.
// If a .env file exists in the current directory or a parent directory, it will
// be loaded automatically. Environment variables already set take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		MistralAPIKey:     getEnv("MISTRAL_API_KEY", ""),
		MistralBaseURL:    getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),
		ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsBaseURL: getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"),
		StaticDir:         getEnv("STATIC_DIR", "./frontend/build"),
		AudioTmpDir:       getEnv("AUDIO_TMP_DIR", os.TempDir()),
		Port:              getEnv("PORT", "5000"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	timeout, err := time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT must be a valid duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("PROVIDER_TIMEOUT must be greater than 0")
	}
	cfg.ProviderTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
