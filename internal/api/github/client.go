package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"
	"github.com/shurcooL/githubv4"

	"github.com/vilaca/gloom/internal/api"
	"github.com/vilaca/gloom/internal/domain"
)

const (
	defaultBaseURL    = "https://api.github.com/"
	defaultGraphQLURL = "https://api.github.com/graphql"
)

var _ api.ProfileClient = (*Client)(nil)

// Client implements api.ProfileClient for GitHub.
// The viewer profile comes from the GraphQL API, readmes from the REST API.
type Client struct {
	graphql *githubv4.Client
	rest    *gh.Client
}

// NewClient creates a new GitHub client.
// When httpClient is nil one is built from config.Token and config.Timeout;
// a non-nil httpClient is used as is and must carry its own authentication.
func NewClient(config api.ClientConfig, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = api.NewHTTPClient(context.Background(), config.Token, config.Timeout)
	}

	graphqlURL := config.GraphQLURL
	if graphqlURL == "" {
		graphqlURL = defaultGraphQLURL
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	rest := gh.NewClient(httpClient)
	rest.BaseURL = parsed

	return &Client{
		graphql: githubv4.NewEnterpriseClient(graphqlURL, httpClient),
		rest:    rest,
	}, nil
}

// GetViewer retrieves the authenticated user's profile.
func (c *Client) GetViewer(ctx context.Context) (*domain.Profile, error) {
	var q viewerQuery
	if err := c.graphql.Query(ctx, &q, nil); err != nil {
		return nil, fmt.Errorf("failed to query viewer: %w", err)
	}

	if q.Viewer.Login == "" {
		return nil, fmt.Errorf("viewer query returned no login")
	}

	return convertViewer(q.Viewer), nil
}

// GetRepoReadMe retrieves and decodes the readme of owner/repo.
func (c *Client) GetRepoReadMe(ctx context.Context, owner, repo string) (string, error) {
	readme, _, err := c.rest.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get readme for %s/%s: %w", owner, repo, err)
	}

	content, err := readme.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode readme for %s/%s: %w", owner, repo, err)
	}

	return content, nil
}

// convertViewer converts the GraphQL viewer record to the domain model.
func convertViewer(v viewer) *domain.Profile {
	return &domain.Profile{
		Login:           v.Login,
		Name:            v.Name,
		AvatarURL:       v.AvatarURL,
		Bio:             v.Bio,
		Company:         v.Company,
		WebsiteURL:      v.WebsiteURL,
		TwitterUsername: v.TwitterUsername,
		Stats: domain.ProfileStats{
			Repositories:        v.Repositories.TotalCount,
			Organizations:       v.Organizations.TotalCount,
			StarredRepositories: v.StarredRepositories.TotalCount,
			Followers:           v.Followers.TotalCount,
			Following:           v.Following.TotalCount,
		},
	}
}

// GitHub GraphQL response types
type viewerQuery struct {
	Viewer viewer `graphql:"viewer"`
}

type viewer struct {
	Login               string     `graphql:"login"`
	Name                *string    `graphql:"name"`
	AvatarURL           string     `graphql:"avatarUrl"`
	Bio                 *string    `graphql:"bio"`
	Company             *string    `graphql:"company"`
	WebsiteURL          *string    `graphql:"websiteUrl"`
	TwitterUsername     *string    `graphql:"twitterUsername"`
	Repositories        totalCount `graphql:"repositories"`
	Organizations       totalCount `graphql:"organizations"`
	StarredRepositories totalCount `graphql:"starredRepositories"`
	Followers           totalCount `graphql:"followers"`
	Following           totalCount `graphql:"following"`
}

type totalCount struct {
	TotalCount int `graphql:"totalCount"`
}
