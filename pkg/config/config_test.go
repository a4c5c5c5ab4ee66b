package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-quickclick/pkg/domain"
)

func validConfig() Config {
	cfg := Default()
	cfg.Username = "owner@example.com"
	cfg.Password = "secret"
	cfg.AccountID = 1
	cfg.MenuID = 2
	return cfg
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Setenv("QUICKCLICK_USERNAME", "owner@example.com")
	t.Setenv("QUICKCLICK_PASSWORD", "secret")
	t.Setenv("QUICKCLICK_ACCOUNT_ID", "42")
	t.Setenv("QUICKCLICK_MENU_ID", "7")
	t.Setenv("QUICKCLICK_TRANSPORT", "http")
	t.Setenv("QUICKCLICK_HTTP_PORT", "8081")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.Username)
	assert.Equal(t, 42, cfg.AccountID)
	assert.Equal(t, 7, cfg.MenuID)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, 8081, cfg.HTTPPort)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL, "base URL keeps its default when unset")
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	t.Setenv("QUICKCLICK_ACCOUNT_ID", "not-a-number")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUICKCLICK_ACCOUNT_ID")
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing username", func(c *Config) { c.Username = "" }, "QUICKCLICK_USERNAME"},
		{"username not an email", func(c *Config) { c.Username = "owner" }, "QUICKCLICK_USERNAME"},
		{"missing password", func(c *Config) { c.Password = "" }, "QUICKCLICK_PASSWORD"},
		{"bad account id", func(c *Config) { c.AccountID = 0 }, "QUICKCLICK_ACCOUNT_ID"},
		{"bad menu id", func(c *Config) { c.MenuID = -1 }, "QUICKCLICK_MENU_ID"},
		{"bad transport", func(c *Config) { c.Transport = "grpc" }, "unsupported transport"},
		{"bad port for http", func(c *Config) { c.Transport = TransportHTTP; c.HTTPPort = 0 }, "QUICKCLICK_HTTP_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
