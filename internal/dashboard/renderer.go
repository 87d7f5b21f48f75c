package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vilaca/gloom/internal/domain"
	"github.com/vilaca/gloom/internal/profile"
)

// Renderer handles rendering responses to HTTP clients.
type Renderer interface {
	RenderHealth(w io.Writer) error
	RenderProfilePage(w io.Writer, snap profile.Snapshot, refreshSeconds int) error
	RenderProfileJSON(w io.Writer, snap profile.Snapshot) error
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	// All HTML is embedded in methods, no external templates needed
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

// profileResponse is the JSON shape of /api/profile.
type profileResponse struct {
	State     domain.FetchStatus `json:"state"`
	Profile   *domain.Profile    `json:"profile"`
	ReadMe    string             `json:"readme"`
	HasErrors bool               `json:"hasErrors"`
	IsLoading bool               `json:"isLoading"`
}

func (r *HTMLRenderer) RenderProfileJSON(w io.Writer, snap profile.Snapshot) error {
	resp := profileResponse{
		State:     snap.State.Status,
		ReadMe:    snap.ReadMe,
		HasErrors: snap.HasErrors,
		IsLoading: snap.IsLoading,
	}
	if snap.State.IsLoaded() {
		p := snap.State.Profile
		resp.Profile = &p
	}
	return json.NewEncoder(w).Encode(resp)
}

// RenderProfilePage renders the loading indicator, the error card or the loaded profile.
// The page refreshes itself only while loading.
func (r *HTMLRenderer) RenderProfilePage(w io.Writer, snap profile.Snapshot, refreshSeconds int) error {
	var sb strings.Builder

	refresh := 0
	if snap.State.Status == domain.FetchLoading {
		refresh = refreshSeconds
	}

	sb.WriteString(htmlHead("Profile", "", refresh))
	sb.WriteString(`
<body>
	<div class="container">
		`)
	sb.WriteString(buildNavigation())

	switch snap.State.Status {
	case domain.FetchLoaded:
		sb.WriteString(buildProfileHeader(snap.State.Profile))
		sb.WriteString(buildStatCard(snap.State.Profile.Stats))
		if snap.ReadMe != "" {
			sb.WriteString(buildReadMe(snap.ReadMe))
		}
	case domain.FetchFailed:
		sb.WriteString(`<div class="card error" role="alert">
			<h2>Could not load profile</h2>
			<p>Check the configured token and try reloading.</p>
		</div>`)
	default:
		sb.WriteString(loadingSpinner())
	}

	sb.WriteString(`
	</div>`)
	sb.WriteString(htmlFooter())

	_, err := w.Write([]byte(sb.String()))
	return err
}

// buildProfileHeader renders avatar, name, login, bio, contact details and follow counts.
func buildProfileHeader(p domain.Profile) string {
	var sb strings.Builder

	sb.WriteString(`<div class="card profile-header">`)
	if p.AvatarURL != "" {
		sb.WriteString(fmt.Sprintf(`<img class="avatar" src="%s" alt="%s's avatar">`,
			escapeHTML(p.AvatarURL), escapeHTML(p.DisplayName())))
	}
	if p.Name != nil && *p.Name != "" {
		sb.WriteString(fmt.Sprintf(`<div class="profile-name">%s</div>`, escapeHTML(*p.Name)))
	}
	sb.WriteString(fmt.Sprintf(`<div class="profile-login">%s</div>`, escapeHTML(p.Login)))

	bio := ""
	if p.Bio != nil {
		bio = *p.Bio
	}
	sb.WriteString(fmt.Sprintf(`<p class="profile-bio">%s</p>`, escapeHTML(bio)))

	if links := p.ContactLinks(); len(links) > 0 {
		sb.WriteString(`<div class="profile-details">`)
		for _, link := range links {
			if link.URL == "" {
				sb.WriteString(fmt.Sprintf(`<span class="detail-%s">%s</span>`, link.Kind, escapeHTML(link.Label)))
				continue
			}
			sb.WriteString(externalLink(link.URL, link.Label))
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(fmt.Sprintf(`<div class="profile-follows"><span>%d Followers</span><span>%d Following</span></div>`,
		p.Stats.Followers, p.Stats.Following))
	sb.WriteString(`</div>`)

	return sb.String()
}

// buildStatCard renders the repository, organization and star counts.
func buildStatCard(stats domain.ProfileStats) string {
	var sb strings.Builder

	sb.WriteString(`<div class="card stats">`)
	sb.WriteString(statItem("📘", "Repositories", stats.Repositories))
	sb.WriteString(statItem("🏢", "Organizations", stats.Organizations))
	sb.WriteString(statItem("⭐", "Starred", stats.StarredRepositories))
	sb.WriteString(`</div>`)

	return sb.String()
}

func statItem(icon, label string, count int) string {
	return fmt.Sprintf(`<div class="stat-item"><span class="stat-icon">%s</span><span class="stat-label">%s</span><span class="stat-count">%d</span></div>`,
		icon, label, count)
}

// buildReadMe renders the readme as preformatted text.
func buildReadMe(text string) string {
	return fmt.Sprintf(`<div class="card"><h2>README</h2><div class="readme">%s</div></div>`, escapeHTML(text))
}
