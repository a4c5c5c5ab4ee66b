package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-quickclick/pkg/console"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToolConfigsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, cfg := range toolConfigs {
		assert.NotEmpty(t, cfg.name)
		assert.NotEmpty(t, cfg.description, "tool %s needs a description", cfg.name)
		assert.NotNil(t, cfg.handler, "tool %s needs a handler", cfg.name)
		assert.False(t, seen[cfg.name], "duplicate tool name %s", cfg.name)
		seen[cfg.name] = true
	}

	// The full console surface is exposed.
	for _, name := range []string{
		"get-settings", "update-to-go-waiting-time",
		"list-day-offs", "add-day-off", "delete-day-off",
		"enable-ordering",
		"list-products", "get-product", "create-product", "update-product",
	} {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestBuildToolSchema(t *testing.T) {
	schema := buildToolSchema(toolConfig{
		name: "update-product",
		params: []toolParam{
			{name: "id", paramType: "number", description: "the id", required: true},
			{name: "price", paramType: "number", description: "the price", required: false},
		},
	})

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"id"}, schema.Required)

	idSchema, ok := schema.Properties["id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "number", idSchema["type"])
	assert.Equal(t, "the id", idSchema["description"])
}

func TestRegisterToolsSucceeds(t *testing.T) {
	mcpServer := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	client := console.New(console.Config{
		Username:  "owner@example.com",
		Password:  "secret",
		AccountID: 1,
		MenuID:    2,
		BaseURL:   "http://127.0.0.1:1",
	}, discardLogger())

	require.NoError(t, registerTools(mcpServer, client, discardLogger()))
}
