package service

import (
	"context"
	"math"
	"regexp"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mcp-quickclick/pkg/console"
	"mcp-quickclick/pkg/domain"
)

var dayOffDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Argument coercion helpers. JSON numbers arrive as float64; malformed or
// missing arguments surface as validation errors in the tool result.

func stringArg(args map[string]any, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", domain.NewValidationError("arguments", "missing required parameter: "+name)
	}
	return value, nil
}

func optionalStringArg(args map[string]any, name string) (*string, error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return nil, nil
	}
	value, ok := raw.(string)
	if !ok {
		return nil, domain.NewValidationError("arguments", "parameter "+name+" must be a string")
	}
	return &value, nil
}

func intArg(args map[string]any, name string) (int, error) {
	value, ok := args[name].(float64)
	if !ok {
		return 0, domain.NewValidationError("arguments", "missing or non-numeric parameter: "+name)
	}
	if value != math.Trunc(value) {
		return 0, domain.NewValidationError("arguments", "parameter "+name+" must be an integer")
	}
	return int(value), nil
}

func optionalIntArg(args map[string]any, name string) (*int, error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return nil, nil
	}
	value, ok := raw.(float64)
	if !ok {
		return nil, domain.NewValidationError("arguments", "parameter "+name+" must be a number")
	}
	if value != math.Trunc(value) {
		return nil, domain.NewValidationError("arguments", "parameter "+name+" must be an integer")
	}
	parsed := int(value)
	return &parsed, nil
}

func boolArg(args map[string]any, name string) (bool, error) {
	value, ok := args[name].(bool)
	if !ok {
		return false, domain.NewValidationError("arguments", "missing or non-boolean parameter: "+name)
	}
	return value, nil
}

func optionalBoolArg(args map[string]any, name string) (*bool, error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return nil, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return nil, domain.NewValidationError("arguments", "parameter "+name+" must be a boolean")
	}
	return &value, nil
}

func handleGetSettings(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		settings, err := client.GetSettings(ctx)
		if err != nil {
			return createErrorResult(err)
		}
		return createToolResult(settings)
	}
}

func handleUpdateToGoWaitingTime(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		minutes, err := intArg(req.GetArguments(), "waitingTime")
		if err != nil {
			return createErrorResult(err)
		}
		if err := client.UpdateToGoWaitingTime(ctx, minutes); err != nil {
			return createErrorResult(err)
		}
		return createMessageResult("Updated to-go waiting time to %d", minutes)
	}
}

func handleListDayOffs(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dayOffs, err := client.ListDayOffs(ctx)
		if err != nil {
			return createErrorResult(err)
		}
		return createToolResult(map[string][]domain.DayOff{"dayOffs": dayOffs})
	}
}

func handleAddDayOff(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := stringArg(req.GetArguments(), "date")
		if err != nil {
			return createErrorResult(err)
		}
		if err := validateDayOffDate(date); err != nil {
			return createErrorResult(err)
		}
		if err := client.AddDayOff(ctx, date); err != nil {
			return createErrorResult(err)
		}
		return createMessageResult("Added day off for %s", date)
	}
}

// validateDayOffDate requires a real calendar date in YYYY-MM-DD form.
func validateDayOffDate(date string) error {
	if !dayOffDatePattern.MatchString(date) {
		return domain.NewValidationError("add day off", "date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domain.NewValidationError("add day off", "date is not a valid calendar date")
	}
	return nil
}

func handleDeleteDayOff(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := intArg(req.GetArguments(), "id")
		if err != nil {
			return createErrorResult(err)
		}
		if err := client.DeleteDayOff(ctx, id); err != nil {
			return createErrorResult(err)
		}
		return createMessageResult("Deleted day off %d", id)
	}
}

func handleEnableOrdering(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		enabled, err := boolArg(req.GetArguments(), "enabled")
		if err != nil {
			return createErrorResult(err)
		}
		if err := client.EnableOrdering(ctx, enabled); err != nil {
			return createErrorResult(err)
		}
		if enabled {
			return createMessageResult("Ordering enabled")
		}
		return createMessageResult("Ordering disabled")
	}
}

func handleListProducts(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := optionalStringArg(req.GetArguments(), "name")
		if err != nil {
			return createErrorResult(err)
		}
		filter := ""
		if name != nil {
			filter = *name
		}
		products, err := client.ListProducts(ctx, filter)
		if err != nil {
			return createErrorResult(err)
		}
		return createToolResult(map[string][]domain.Product{"products": products})
	}
}

func handleGetProduct(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := intArg(req.GetArguments(), "id")
		if err != nil {
			return createErrorResult(err)
		}
		product, err := client.GetProduct(ctx, id)
		if err != nil {
			return createErrorResult(err)
		}
		return createToolResult(product)
	}
}

func handleCreateProduct(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		price, err := intArg(args, "price")
		if err != nil {
			return createErrorResult(err)
		}
		name, err := stringArg(args, "name")
		if err != nil {
			return createErrorResult(err)
		}
		description, err := optionalStringArg(args, "description")
		if err != nil {
			return createErrorResult(err)
		}
		isAvailable, err := boolArg(args, "isAvailable")
		if err != nil {
			return createErrorResult(err)
		}
		categoryID, err := intArg(args, "categoryId")
		if err != nil {
			return createErrorResult(err)
		}

		in := domain.ProductCreate{
			Name:        name,
			Price:       price,
			IsAvailable: isAvailable,
			CategoryID:  categoryID,
		}
		if description != nil {
			in.Description = *description
		}

		if err := client.CreateProduct(ctx, in); err != nil {
			return createErrorResult(err)
		}
		return createMessageResult("Created product %s", name)
	}
}

func handleUpdateProduct(client *console.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		id, err := intArg(args, "id")
		if err != nil {
			return createErrorResult(err)
		}
		price, err := optionalIntArg(args, "price")
		if err != nil {
			return createErrorResult(err)
		}
		name, err := optionalStringArg(args, "name")
		if err != nil {
			return createErrorResult(err)
		}
		description, err := optionalStringArg(args, "description")
		if err != nil {
			return createErrorResult(err)
		}
		isAvailable, err := optionalBoolArg(args, "isAvailable")
		if err != nil {
			return createErrorResult(err)
		}

		product, err := client.UpdateProduct(ctx, domain.ProductUpdate{
			ID:          id,
			Name:        name,
			Price:       price,
			Description: description,
			IsAvailable: isAvailable,
		})
		if err != nil {
			return createErrorResult(err)
		}
		return createToolResult(product)
	}
}
