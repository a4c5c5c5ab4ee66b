// Package config loads server configuration from environment variables, with
// optional .env file support.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mcp-quickclick/pkg/domain"
)

// Transport types supported by the server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
	TransportSSE   = "sse"
)

const defaultBaseURL = "https://app.quickclick.cc/console/apis"

// Config holds all server configuration.
type Config struct {
	// QuickClick console credentials and identifiers.
	Username  string
	Password  string
	AccountID int
	MenuID    int
	BaseURL   string

	// Server wiring.
	Transport string
	HTTPPort  int
	LogLevel  string
}

// Default returns the configuration defaults before environment overrides.
func Default() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		Transport: TransportStdio,
		HTTPPort:  3000,
		LogLevel:  "info",
	}
}

// envMapping defines how an environment variable maps to a configuration field.
type envMapping struct {
	envKey string
	setter func(config *Config, value string) error
}

func buildEnvMappings() []envMapping {
	return []envMapping{
		{"QUICKCLICK_USERNAME", func(config *Config, value string) error {
			config.Username = value
			return nil
		}},
		{"QUICKCLICK_PASSWORD", func(config *Config, value string) error {
			config.Password = value
			return nil
		}},
		{"QUICKCLICK_ACCOUNT_ID", func(config *Config, value string) error {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid QUICKCLICK_ACCOUNT_ID %q: %w", value, err)
			}
			config.AccountID = parsed
			return nil
		}},
		{"QUICKCLICK_MENU_ID", func(config *Config, value string) error {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid QUICKCLICK_MENU_ID %q: %w", value, err)
			}
			config.MenuID = parsed
			return nil
		}},
		{"QUICKCLICK_BASE_URL", func(config *Config, value string) error {
			config.BaseURL = value
			return nil
		}},
		{"QUICKCLICK_TRANSPORT", func(config *Config, value string) error {
			config.Transport = value
			return nil
		}},
		{"QUICKCLICK_HTTP_PORT", func(config *Config, value string) error {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid QUICKCLICK_HTTP_PORT %q: %w", value, err)
			}
			config.HTTPPort = parsed
			return nil
		}},
		{"QUICKCLICK_LOG_LEVEL", func(config *Config, value string) error {
			config.LogLevel = value
			return nil
		}},
	}
}

// Load reads configuration from the environment, optionally loading an env
// file first. An empty envFile falls back to ./.env when present.
func Load(envFile string) (Config, error) {
	config := Default()

	if err := loadEnvFile(envFile); err != nil {
		return config, err
	}

	for _, mapping := range buildEnvMappings() {
		if val := os.Getenv(mapping.envKey); val != "" {
			if err := mapping.setter(&config, val); err != nil {
				return config, err
			}
		}
	}

	return config, nil
}

func loadEnvFile(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load config file %s: %w", envFile, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		godotenv.Load(".env")
	}
	return nil
}

// Validate checks that the configuration can reach the console.
func (c Config) Validate() error {
	if c.Username == "" || !strings.Contains(c.Username, "@") {
		return domain.NewValidationError("config", "QUICKCLICK_USERNAME must be the console account email")
	}
	if c.Password == "" {
		return domain.NewValidationError("config", "QUICKCLICK_PASSWORD is required")
	}
	if c.AccountID <= 0 {
		return domain.NewValidationError("config", "QUICKCLICK_ACCOUNT_ID must be a positive integer")
	}
	if c.MenuID <= 0 {
		return domain.NewValidationError("config", "QUICKCLICK_MENU_ID must be a positive integer")
	}
	if c.BaseURL == "" {
		return domain.NewValidationError("config", "QUICKCLICK_BASE_URL must not be empty")
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		return domain.NewValidationError("config", fmt.Sprintf("unsupported transport type: %s", c.Transport))
	}
	if c.Transport != TransportStdio && c.HTTPPort <= 0 {
		return domain.NewValidationError("config", "QUICKCLICK_HTTP_PORT must be a positive integer")
	}
	return nil
}
