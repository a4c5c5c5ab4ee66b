// Package console implements the client for the QuickClick vendor console.
// One Client instance owns one authenticated session and one availability
// cache; construct one instance per credential set.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"mcp-quickclick/pkg/domain"
)

// Config holds the settings a Client needs to reach the console.
type Config struct {
	Username  string
	Password  string
	AccountID int
	MenuID    int
	// BaseURL overrides the production console API root. Used by tests.
	BaseURL string
}

// Client exposes the console domain operations. Every operation acquires a
// valid session header first and issues exactly one upstream request, except
// UpdateProduct which reads the authoritative record before writing.
type Client struct {
	api       *http.Client
	baseURL   string
	accountID int
	menuID    int
	sessions  *sessionManager
	logger    *slog.Logger

	mu           sync.RWMutex
	availability map[int]availabilityEntry
}

// New creates a console client. The session starts empty; the first operation
// triggers a sign-in.
func New(cfg Config, logger *slog.Logger) *Client {
	api := &http.Client{Timeout: 30 * time.Second}
	return &Client{
		api:       api,
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
		menuID:    cfg.MenuID,
		sessions: newSessionManager(api, cfg.BaseURL, credentials{
			Username: cfg.Username,
			Password: cfg.Password,
		}, logger),
		logger:       logger.With("component", "console_client"),
		availability: make(map[int]availabilityEntry),
	}
}

// do issues one authenticated request against the console API. body and out
// may be nil; out is decoded from the JSON response when non-nil. Non-2xx
// responses and transport failures surface as upstream errors carrying the
// endpoint and status.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	header, err := c.sessions.Header(ctx)
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Cookie", header)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.api.Do(req)
	if err != nil {
		return domain.NewUpstreamError(method, path, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewUpstreamError(method, path, resp.StatusCode, fmt.Errorf("console returned %d", resp.StatusCode))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.NewUpstreamError(method, path, resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}

	return nil
}
