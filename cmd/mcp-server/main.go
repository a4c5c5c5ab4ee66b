package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcp-quickclick/pkg/config"
	"mcp-quickclick/pkg/service"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"
	// GitCommit is the git commit SHA at build time
	GitCommit = "unknown"
)

type flagConfig struct {
	envFile   *string
	transport *string
	httpPort  *int
	logLevel  *string
	version   *bool
}

func parseFlags() *flagConfig {
	flags := &flagConfig{
		envFile:   flag.String("config", "", "Path to an env file with QUICKCLICK_* variables"),
		transport: flag.String("transport", "", "Transport type (stdio, http, sse)"),
		httpPort:  flag.Int("http-port", 0, "Port for the http/sse transports"),
		logLevel:  flag.String("log-level", "", "Log level (debug, info, warn, error)"),
		version:   flag.Bool("version", false, "Show version information"),
	}
	flag.Parse()
	return flags
}

func main() {
	flags := parseFlags()

	if *flags.version {
		fmt.Printf("%s %s (commit: %s)\n", "mcp-quickclick", Version, GitCommit)
		os.Exit(0)
	}

	cfg, err := loadAndConfigure(flags)
	if err != nil {
		log.Error().Err(err).Msg("Failed to configure server")
		os.Exit(1)
	}

	log.Info().
		Str("version", Version).
		Str("transport", cfg.Transport).
		Int("account_id", cfg.AccountID).
		Msg("Starting QuickClick MCP server")

	srv, err := service.NewServer(cfg, createSlogLogger(cfg.LogLevel))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create server")
		os.Exit(1)
	}

	runServerWithShutdown(srv)
}

// loadAndConfigure loads configuration, applies flag overrides, and sets up
// logging.
func loadAndConfigure(flags *flagConfig) (config.Config, error) {
	cfg, err := config.Load(*flags.envFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}

	if *flags.transport != "" {
		cfg.Transport = *flags.transport
	}
	if *flags.httpPort > 0 {
		cfg.HTTPPort = *flags.httpPort
	}
	if *flags.logLevel != "" {
		cfg.LogLevel = *flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

// setupLogging configures the global zerolog logger. Logs go to stderr; the
// stdio transport owns stdout.
func setupLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// createSlogLogger creates the structured logger injected into components.
func createSlogLogger(logLevel string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseSlogLevel(logLevel),
	})
	return slog.New(handler)
}

func parseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runServerWithShutdown runs the server with graceful shutdown handling.
func runServerWithShutdown(srv *service.Server) {
	ctx := context.Background()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during server shutdown")
		}

	case err := <-serverErr:
		log.Error().Err(err).Msg("Server failed")
		os.Exit(1)
	}
}
