// Package config provides environment-backed configuration for the interview
// prep server. Each struct has a NewXConfig constructor that reads the
// environment, applies defaults and validates the result.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds process-wide settings established once at startup.
type AppConfig struct {
	Port             int
	MongoURI         string
	MongoDatabase    string
	GeminiAPIKey     string
	GeminiModel      string
	UploadDir        string
	QuestionBankPath string
}

// NewAppConfig creates the application configuration from environment variables.
// MONGODB_URI and GEMINI_API_KEY are required; everything else has a default.
func NewAppConfig() (*AppConfig, error) {
	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	cfg := &AppConfig{
		Port:             port,
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDatabase:    getEnv("MONGODB_DATABASE", "interview_prep_ai"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		QuestionBankPath: getEnv("QUESTION_BANK_PATH", "data/interview_questions.json"),
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
