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

// sessionCookieName is the one cookie in the sign-in response that authorizes
// subsequent console calls.
const sessionCookieName = "connect.sid"

const signinPath = "/eaa/signin"

type credentials struct {
	Username string
	Password string
}

// sessionManager owns the cookies returned by the last successful sign-in and
// hands out a ready-to-send Cookie header, re-authenticating only when the
// session cookie is absent or expired. Expiry is re-checked on every call, not
// at acquisition time.
type sessionManager struct {
	api     *http.Client
	baseURL string
	creds   credentials
	logger  *slog.Logger

	// mu guards cookies and is held across the sign-in exchange, so
	// concurrent callers that observe an expired session await one shared
	// login instead of issuing duplicates.
	mu      sync.Mutex
	cookies []*http.Cookie
}

func newSessionManager(api *http.Client, baseURL string, creds credentials, logger *slog.Logger) *sessionManager {
	return &sessionManager{
		api:     api,
		baseURL: baseURL,
		creds:   creds,
		logger:  logger.With("component", "session_manager"),
	}
}

// Header returns a "connect.sid=<value>" header value usable for the next
// console call. The fast path returns the held cookie without any network
// traffic; a sign-in happens only when no usable cookie is held.
func (m *sessionManager) Header(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if header, ok := sessionHeader(m.cookies, time.Now()); ok {
		return header, nil
	}

	cookies, err := m.signIn(ctx)
	if err != nil {
		return "", err
	}

	header, ok := sessionHeader(cookies, time.Now())
	if !ok {
		// A login that does not yield a usable cookie is a hard failure,
		// not a retry condition. Held state stays untouched.
		return "", domain.NewAuthenticationError("signin", fmt.Sprintf("no %s cookie returned from login", sessionCookieName))
	}

	m.cookies = cookies
	m.logger.Debug("session renewed", "cookies", len(cookies))
	return header, nil
}

// sessionHeader locates the session cookie among the held fragments and
// formats it, rejecting it when expired. A cookie without an Expires
// attribute never expires.
func sessionHeader(cookies []*http.Cookie, now time.Time) (string, bool) {
	for _, c := range cookies {
		if c.Name != sessionCookieName {
			continue
		}
		if !c.Expires.IsZero() && !c.Expires.After(now) {
			continue
		}
		return sessionCookieName + "=" + c.Value, true
	}
	return "", false
}

type signinRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// signIn performs the login exchange and returns the parsed Set-Cookie
// fragments. It never mutates held state; the caller replaces the cookie set
// wholesale once it has verified the session cookie is present.
func (m *sessionManager) signIn(ctx context.Context) ([]*http.Cookie, error) {
	body, err := json.Marshal(signinRequest{
		Type:     "eaa",
		Username: m.creds.Username,
		Password: m.creds.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal signin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+signinPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create signin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.api.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(http.MethodPost, signinPath, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewUpstreamError(http.MethodPost, signinPath, resp.StatusCode, fmt.Errorf("signin rejected"))
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return nil, domain.NewAuthenticationError("signin", "no cookies returned from login")
	}

	return cookies, nil
}
