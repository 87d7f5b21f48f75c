package api

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	// DefaultTimeout bounds a single API request
	DefaultTimeout = 30 * time.Second
)

// NewHTTPClient returns an HTTP client that authenticates every request with token.
// An empty token yields an unauthenticated client.
func NewHTTPClient(ctx context.Context, token string, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if token == "" {
		return &http.Client{Timeout: timeout}
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(ctx, src)
	client.Timeout = timeout

	return client
}
