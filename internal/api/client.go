package api

import (
	"context"
	"time"

	"github.com/vilaca/gloom/internal/domain"
)

// ViewerClient fetches the authenticated user's profile.
// Small, focused interface so the view-model can be tested with fakes.
type ViewerClient interface {
	// GetViewer returns the profile of the user owning the configured token.
	GetViewer(ctx context.Context) (*domain.Profile, error)
}

// ReadmeClient fetches repository readme documents.
type ReadmeClient interface {
	// GetRepoReadMe returns the decoded readme text of owner/repo.
	GetRepoReadMe(ctx context.Context, owner, repo string) (string, error)
}

// ProfileClient is implemented by clients that serve both the viewer query and readmes.
type ProfileClient interface {
	ViewerClient
	ReadmeClient
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL    string // REST API base URL
	GraphQLURL string // GraphQL endpoint
	Token      string
	Timeout    time.Duration // per request; DefaultTimeout when zero
}
