// Package service wires the console client into an MCP server and serves it
// over the configured transport.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"mcp-quickclick/pkg/config"
	"mcp-quickclick/pkg/console"
)

// Version is the protocol-visible server version.
const Version = "1.0.0"

const serverName = "mcp-quickclick"

// Server owns the MCP server instance and the console client behind it.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	mcp    *server.MCPServer

	// Set while an HTTP-based transport is running, for graceful shutdown.
	httpServer *server.StreamableHTTPServer
	sseServer  *server.SSEServer
}

// NewServer builds the MCP server, the console client, and registers every
// tool. The console session stays empty until the first tool call.
func NewServer(cfg config.Config, logger *slog.Logger) (*Server, error) {
	mcpServer := server.NewMCPServer(
		serverName,
		Version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	client := console.New(console.Config{
		Username:  cfg.Username,
		Password:  cfg.Password,
		AccountID: cfg.AccountID,
		MenuID:    cfg.MenuID,
		BaseURL:   cfg.BaseURL,
	}, logger)

	if err := registerTools(mcpServer, client, logger); err != nil {
		return nil, errors.Wrap(err, "failed to register tools")
	}

	return &Server{
		cfg:    cfg,
		logger: logger.With("component", "mcp_server"),
		mcp:    mcpServer,
	}, nil
}

// Start serves the MCP protocol on the configured transport and blocks until
// the transport stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting transport", "type", s.cfg.Transport)

	switch s.cfg.Transport {
	case config.TransportStdio:
		return server.ServeStdio(s.mcp)

	case config.TransportHTTP:
		s.httpServer = server.NewStreamableHTTPServer(s.mcp)
		return s.httpServer.Start(fmt.Sprintf(":%d", s.cfg.HTTPPort))

	case config.TransportSSE:
		s.sseServer = server.NewSSEServer(s.mcp)
		return s.sseServer.Start(fmt.Sprintf(":%d", s.cfg.HTTPPort))

	default:
		return fmt.Errorf("unsupported transport type: %s", s.cfg.Transport)
	}
}

// Stop shuts down an HTTP-based transport. The stdio transport has no stop
// method and relies on stdin closing.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	if s.sseServer != nil {
		return s.sseServer.Shutdown(ctx)
	}
	return nil
}
