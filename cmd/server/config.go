package main

import "errors"

// Config is built once at startup and injected into the components that
// need it; nothing reads settings from ambient global state.
type Config struct {
	Port        string
	Env         string
	CORSOrigins string

	DataFilePath string
	DatabaseURL  string

	MasterAPIKey    string
	AnthropicAPIKey string
	ClaudeBaseURL   string
	ClaudeModel     string
	MaxTokens       int
	Temperature     float64
}

func loadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("GO_ENV", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DataFilePath: getEnv("DATA_FILE_PATH", "data/tourism_data.json"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),

		MasterAPIKey:    getEnv("MASTER_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ClaudeBaseURL:   getEnv("CLAUDE_BASE_URL", "https://api.anthropic.com/v1/messages"),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-haiku-4-5-20251001"),
		MaxTokens:       getEnvInt("MAX_TOKENS", 1024),
		Temperature:     getEnvFloat("TEMPERATURE", 0.7),
	}
}

// Validate checks that the settings without sane defaults are present.
func (c *Config) Validate() error {
	if c.AnthropicAPIKey == "" {
		return errors.New("ANTHROPIC_API_KEY is not configured")
	}
	if c.MasterAPIKey == "" {
		return errors.New("MASTER_API_KEY is not configured")
	}
	return nil
}
