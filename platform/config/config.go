// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the demo application settings, loaded from the environment.
type Config struct {
	Env         string
	LogFile     string
	RenderStyle string
	FieldLabel  string
	Placeholder string
	ErrorText   string
	Optional    bool
}

var renderStyles = map[string]bool{
	"national":      true,
	"international": true,
	"e164":          true,
}

// Load reads configuration from the environment, with .env support for
// development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		LogFile:     getEnv("LOG_FILE", ""),
		RenderStyle: strings.ToLower(getEnv("PHONE_RENDER", "national")),
		FieldLabel:  getEnv("FIELD_LABEL", "Phone number"),
		Placeholder: getEnv("FIELD_PLACEHOLDER", "Enter a phone number"),
		ErrorText:   getEnv("FIELD_ERROR_TEXT", "Please enter a valid phone number"),
		Optional:    strings.EqualFold(getEnv("FIELD_OPTIONAL", "false"), "true"),
	}

	if !renderStyles[cfg.RenderStyle] {
		return nil, fmt.Errorf("invalid PHONE_RENDER %q (expected national, international or e164)", cfg.RenderStyle)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
