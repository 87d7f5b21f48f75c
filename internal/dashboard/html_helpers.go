package dashboard

import (
	"fmt"
	"strings"
)

// htmlHead returns the common HTML head section with proper meta tags.
// refreshSeconds > 0 adds a meta refresh so a loading page picks up the result.
func htmlHead(title, description string, refreshSeconds int) string {
	if description == "" {
		description = "Your GitHub profile at a glance"
	}

	refresh := ""
	if refreshSeconds > 0 {
		refresh = fmt.Sprintf(`<meta http-equiv="refresh" content="%d">`, refreshSeconds)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
	<meta name="description" content="%s">
	%s
	<title>%s - Gloom</title>
	%s
</head>`, escapeHTML(description), refresh, escapeHTML(title), commonCSS())
}

// commonCSS returns the shared CSS styles used across all pages.
func commonCSS() string {
	return `<style>
		/* CSS Variables for theming */
		:root {
			--bg-primary: #f5f5f5;
			--bg-secondary: white;
			--bg-muted: #444;
			--text-primary: #333;
			--text-secondary: #666;
			--link-color: #0066cc;
			--button-bg: #0066cc;
			--button-hover: #0052a3;
			--border-color: #e0e0e0;
			--shadow: rgba(0,0,0,0.1);
			--failed-bg: #f8d7da;
			--failed-text: #721c24;
		}

		[data-theme="dark"] {
			--bg-primary: #1a1a1a;
			--bg-secondary: #2d2d2d;
			--bg-muted: #555;
			--text-primary: #e0e0e0;
			--text-secondary: #b0b0b0;
			--link-color: #4d9fff;
			--button-bg: #4d9fff;
			--button-hover: #3d89ef;
			--border-color: #404040;
			--shadow: rgba(0,0,0,0.3);
			--failed-bg: #4a1a1a;
			--failed-text: #ff6b6b;
		}

		* { box-sizing: border-box; margin: 0; padding: 0; }

		body {
			font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
			padding: 16px;
			background: var(--bg-primary);
			color: var(--text-primary);
			transition: background-color 0.3s, color 0.3s;
			line-height: 1.6;
		}

		.container { max-width: 720px; margin: 0 auto; display: flex; flex-direction: column; gap: 10px; }

		.nav { display: flex; align-items: center; justify-content: space-between; gap: 15px; margin-bottom: 10px; }
		.nav form { margin: 0; }

		.button, .theme-toggle {
			padding: 8px 16px;
			background: var(--button-bg);
			color: white;
			border: none;
			border-radius: 4px;
			cursor: pointer;
			font-size: 14px;
			font-weight: 500;
		}
		.button:hover, .theme-toggle:hover { background: var(--button-hover); }

		.card {
			background: var(--bg-secondary);
			padding: 20px;
			border-radius: 8px;
			box-shadow: 0 2px 4px var(--shadow);
		}
		.card.error { background: var(--failed-bg); color: var(--failed-text); }

		/* Profile header */
		.profile-header { display: flex; flex-direction: column; align-items: center; gap: 5px; text-align: center; }
		.avatar { width: 90px; height: 90px; border-radius: 50%; }
		.profile-name { font-size: 2rem; font-weight: 700; }
		.profile-login { font-size: 1.3rem; font-style: italic; color: var(--text-secondary); }
		.profile-bio { margin-top: 5px; }
		.profile-details, .profile-follows { display: flex; flex-wrap: wrap; justify-content: center; gap: 12px; }
		.profile-details a, .profile-follows span { color: var(--link-color); text-decoration: none; }

		/* Statistics */
		.stat-item { display: flex; align-items: center; gap: 10px; padding: 14px; }
		.stat-icon {
			width: 32px; height: 32px; padding: 6px;
			border-radius: 4px; background: var(--bg-muted); color: white;
			display: inline-flex; align-items: center; justify-content: center;
		}
		.stat-label { flex: 1; }
		.stat-count { color: var(--text-secondary); }

		.readme { white-space: pre-wrap; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9rem; }

		/* Loading indicator */
		.loading { display: flex; justify-content: center; padding: 40px; }
		.loading-spinner {
			width: 40px; height: 40px;
			border: 4px solid var(--border-color);
			border-top-color: var(--link-color);
			border-radius: 50%;
			animation: spin 0.8s linear infinite;
		}
		@keyframes spin { to { transform: rotate(360deg); } }
	</style>`
}

// loadingSpinner returns the HTML for the loading indicator.
func loadingSpinner() string {
	return `<div class="loading" role="status" aria-label="Loading profile">
			<div class="loading-spinner"></div>
		</div>`
}

// themeToggleScript returns the common theme toggle JavaScript.
func themeToggleScript() string {
	return `<script>
		function toggleTheme() {
			const html = document.documentElement;
			const currentTheme = html.getAttribute('data-theme');
			const newTheme = currentTheme === 'dark' ? 'light' : 'dark';
			html.setAttribute('data-theme', newTheme);
			localStorage.setItem('theme', newTheme);
			updateToggleButton(newTheme);
		}

		function updateToggleButton(theme) {
			const button = document.querySelector('.theme-toggle');
			if (button) {
				button.textContent = theme === 'dark' ? '☀️ Light Mode' : '🌙 Dark Mode';
			}
		}

		(function() {
			const savedTheme = localStorage.getItem('theme') || 'light';
			document.documentElement.setAttribute('data-theme', savedTheme);
			updateToggleButton(savedTheme);
		})();
	</script>`
}

// htmlFooter returns the common HTML footer with all scripts.
func htmlFooter() string {
	return themeToggleScript() + `
</body>
</html>`
}

// buildNavigation returns the navigation bar HTML.
func buildNavigation() string {
	return `<div class="nav">
			<strong>Profile</strong>
			<form method="post" action="/api/profile/reload">
				<button class="button" type="submit">Reload</button>
			</form>
			<button class="theme-toggle" onclick="toggleTheme()" aria-label="Toggle theme">🌙 Dark Mode</button>
		</div>`
}

// escapeHTML escapes special HTML characters to prevent XSS.
func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}

// externalLink creates a safe external link with proper security attributes.
func externalLink(url, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		escapeHTML(url), escapeHTML(text))
}
