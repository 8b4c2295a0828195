// Package auth exchanges login sessions of the external authentication
// provider for local sessions and authenticates requests.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

var (
	// ErrUnauthorized is returned when the credentials are missing, unknown or expired.
	ErrUnauthorized = errors.New("you are not authenticated or your session has expired")

	// ErrUnavailable is returned when the authentication provider cannot be reached.
	ErrUnavailable = errors.New("the authentication provider is currently unavailable, please try again later")

	ErrSessionIDMissing = errors.New("the session_id query parameter must be set")
)

// Identity is the user data the provider returns for a confirmed login.
type Identity struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Provider resolves the session ID of a completed external login
// to the identity of the user.
type Provider interface {
	SessionData(ctx context.Context, sessionID string) (Identity, error)
}

// HTTPProvider asks an HTTP endpoint for the session data.
//
// The session ID is sent in the X-Session-ID header.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

// NewHTTPProvider returns a provider querying the given URL.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		Client: &http.Client{},
	}
}

// SessionData implements Provider.
func (p *HTTPProvider) SessionData(ctx context.Context, sessionID string) (Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("creating session data request: %w", err)
	}

	req.Header.Set("X-Session-ID", sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return Identity{}, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Identity{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: reading response: %w", ErrUnavailable, err)
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return Identity{}, fmt.Errorf("%w: parsing session data: %w", ErrUnavailable, err)
	}

	if strings.TrimSpace(identity.Email) == "" || identity.SessionToken == "" {
		return Identity{}, fmt.Errorf("%w: session data is incomplete", ErrUnavailable)
	}

	return identity, nil
}
