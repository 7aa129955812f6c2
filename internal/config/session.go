// Package config provides session configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// SessionConfig holds configuration for signed session cookies.
type SessionConfig struct {
	Secret     string
	TTLHours   int
	CookieName string
	Secure     bool
}

// NewSessionConfig creates a new session configuration from environment variables.
// It reads SESSION_SECRET (required), SESSION_TTL_HOURS (default: 24) and
// SESSION_COOKIE_SECURE (default: false, for local development over plain HTTP).
func NewSessionConfig() (*SessionConfig, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required but not set")
	}

	ttlStr := os.Getenv("SESSION_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24" // default
	}

	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", err)
	}

	secure := false
	if s := os.Getenv("SESSION_COOKIE_SECURE"); s != "" {
		secure, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_COOKIE_SECURE: %v", err)
		}
	}

	config := &SessionConfig{
		Secret:     secret,
		TTLHours:   ttl,
		CookieName: "session",
		Secure:     secure,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *SessionConfig) normalize() error {
	if c.TTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %d", c.TTLHours)
	}
	return nil
}
