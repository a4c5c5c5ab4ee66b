package service

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"mcp-quickclick/pkg/console"
)

// toolParam describes one input parameter of a tool.
type toolParam struct {
	name        string
	paramType   string
	description string
	required    bool
}

// toolConfig declares a tool and binds it to a handler constructor.
type toolConfig struct {
	name        string
	description string
	params      []toolParam
	handler     func(*console.Client) server.ToolHandlerFunc
}

var toolConfigs = []toolConfig{
	{
		name:        "get-settings",
		description: "Get platform settings",
		handler:     handleGetSettings,
	},
	{
		name:        "update-to-go-waiting-time",
		description: "Update to-go waiting time (in minutes)",
		params: []toolParam{
			{name: "waitingTime", paramType: "number", description: "The to-go waiting time in minutes", required: true},
		},
		handler: handleUpdateToGoWaitingTime,
	},
	{
		name:        "list-day-offs",
		description: "List extra day offs",
		handler:     handleListDayOffs,
	},
	{
		name:        "add-day-off",
		description: "Add extra day off",
		params: []toolParam{
			{name: "date", paramType: "string", description: "The date to add the day off for in YYYY-MM-DD format", required: true},
		},
		handler: handleAddDayOff,
	},
	{
		name:        "delete-day-off",
		description: "Delete extra day off",
		params: []toolParam{
			{name: "id", paramType: "number", description: "The id of the day off to delete", required: true},
		},
		handler: handleDeleteDayOff,
	},
	{
		name:        "enable-ordering",
		description: "Enable or disable ordering",
		params: []toolParam{
			{name: "enabled", paramType: "boolean", description: "Whether to enable ordering", required: true},
		},
		handler: handleEnableOrdering,
	},
	{
		name:        "list-products",
		description: "List products",
		params: []toolParam{
			{name: "name", paramType: "string", description: "The name of the product to filter by", required: false},
		},
		handler: handleListProducts,
	},
	{
		name:        "get-product",
		description: "Get product",
		params: []toolParam{
			{name: "id", paramType: "number", description: "The id of the product to get", required: true},
		},
		handler: handleGetProduct,
	},
	{
		name:        "create-product",
		description: "Create product",
		params: []toolParam{
			{name: "price", paramType: "number", description: "The price of the product", required: true},
			{name: "name", paramType: "string", description: "The name of the product", required: true},
			{name: "description", paramType: "string", description: "The description of the product", required: false},
			{name: "isAvailable", paramType: "boolean", description: "Whether the product is available", required: true},
			{name: "categoryId", paramType: "number", description: "The category id of the product", required: true},
		},
		handler: handleCreateProduct,
	},
	{
		name:        "update-product",
		description: "Update product",
		params: []toolParam{
			{name: "id", paramType: "number", description: "The id of the product to update", required: true},
			{name: "price", paramType: "number", description: "The price of the product", required: false},
			{name: "name", paramType: "string", description: "The name of the product", required: false},
			{name: "description", paramType: "string", description: "The description of the product", required: false},
			{name: "isAvailable", paramType: "boolean", description: "Whether the product is available", required: false},
		},
		handler: handleUpdateProduct,
	},
}

// registerTools registers all tools with the MCP server.
func registerTools(mcpServer *server.MCPServer, client *console.Client, logger *slog.Logger) error {
	for _, cfg := range toolConfigs {
		if cfg.handler == nil {
			return errors.Errorf("tool %s has no handler", cfg.name)
		}

		tool := mcp.Tool{
			Name:        cfg.name,
			Description: cfg.description,
			InputSchema: buildToolSchema(cfg),
		}
		mcpServer.AddTool(tool, cfg.handler(client))

		logger.Info("Registered tool", slog.String("name", cfg.name))
	}
	return nil
}

// buildToolSchema creates the MCP input schema for a tool.
func buildToolSchema(cfg toolConfig) mcp.ToolInputSchema {
	properties := make(map[string]any)
	var required []string

	for _, param := range cfg.params {
		properties[param.name] = map[string]any{
			"type":        param.paramType,
			"description": param.description,
		}
		if param.required {
			required = append(required, param.name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
