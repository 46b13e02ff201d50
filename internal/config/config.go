package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// EnvConfig holds every recognized environment option. It is constructed once
// at startup and passed into the bootstrap wiring; nothing reads os.Getenv
// after Load returns.
type EnvConfig struct {
	APP_PORT          string
	GCP_PROJECT_ID    string
	OPENAI_API_KEY    string
	OPENAI_MODEL      string
	SLACK_WEBHOOK_URL string
	LOG_FILE_PATH     string
}

// Load reads an optional .env file and the process environment.
// A missing .env file is not an error; explicit environment variables win.
func Load() (*EnvConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &EnvConfig{
		APP_PORT:          getEnv("APP_PORT", "5000"),
		GCP_PROJECT_ID:    os.Getenv("GCP_PROJECT_ID"),
		OPENAI_API_KEY:    os.Getenv("OPENAI_API_KEY"),
		OPENAI_MODEL:      getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		SLACK_WEBHOOK_URL: os.Getenv("SLACK_WEBHOOK_URL"),
		LOG_FILE_PATH:     os.Getenv("LOG_FILE_PATH"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
