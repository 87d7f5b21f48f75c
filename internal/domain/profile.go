package domain

import (
	"net/url"
	"strings"
)

// Profile represents the authenticated GitHub user ("viewer").
// This is a read-only snapshot of the remote response; it is never mutated locally.
type Profile struct {
	Login     string  `json:"login" yaml:"login"`
	Name      *string `json:"name,omitempty" yaml:"name,omitempty"`
	AvatarURL string  `json:"avatarUrl" yaml:"avatarUrl"`
	Bio       *string `json:"bio,omitempty" yaml:"bio,omitempty"`

	// Optional contact details
	Company         *string `json:"company,omitempty" yaml:"company,omitempty"`
	WebsiteURL      *string `json:"websiteUrl,omitempty" yaml:"websiteUrl,omitempty"`
	TwitterUsername *string `json:"twitterUsername,omitempty" yaml:"twitterUsername,omitempty"`

	Stats ProfileStats `json:"stats" yaml:"stats"`
}

// ProfileStats holds the aggregate counts shown next to a profile.
type ProfileStats struct {
	Repositories        int `json:"repositories" yaml:"repositories"`
	Organizations       int `json:"organizations" yaml:"organizations"`
	StarredRepositories int `json:"starredRepositories" yaml:"starredRepositories"`
	Followers           int `json:"followers" yaml:"followers"`
	Following           int `json:"following" yaml:"following"`
}

// DisplayName returns the profile name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Login
}

// ContactLink is a labelled profile detail, optionally pointing somewhere.
type ContactLink struct {
	Kind  string
	Label string
	URL   string // empty when the detail is not linkable
}

// Contact link kinds
const (
	ContactCompany = "company"
	ContactWebsite = "website"
	ContactTwitter = "twitter"
)

// ContactLinks returns the optional contact details that are present, in display order.
func (p Profile) ContactLinks() []ContactLink {
	var links []ContactLink

	if p.Company != nil && *p.Company != "" {
		links = append(links, ContactLink{Kind: ContactCompany, Label: *p.Company})
	}

	if p.WebsiteURL != nil && *p.WebsiteURL != "" {
		site := *p.WebsiteURL
		links = append(links, ContactLink{Kind: ContactWebsite, Label: site, URL: websiteHref(site)})
	}

	if p.TwitterUsername != nil && *p.TwitterUsername != "" {
		handle := strings.TrimPrefix(*p.TwitterUsername, "@")
		links = append(links, ContactLink{
			Kind:  ContactTwitter,
			Label: "@" + handle,
			URL:   "https://twitter.com/" + handle,
		})
	}

	return links
}

// websiteHref returns the link target for a profile website.
// Bare hosts get an http:// prefix; explicit schemes other than http and https are not linked.
func websiteHref(site string) string {
	if !strings.Contains(site, "://") {
		return "http://" + site
	}

	u, err := url.Parse(site)
	if err != nil || u.Host == "" {
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return site
	default:
		return ""
	}
}
