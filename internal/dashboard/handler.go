package dashboard

import (
	"log"
	"net/http"
	"strings"

	"github.com/vilaca/gloom/internal/profile"
)

// Handler handles HTTP requests for the profile dashboard.
// It only reads view-model state; it never fetches on its own.
type Handler struct {
	renderer          Renderer
	logger            Logger
	screens           ScreenHost
	uiRefreshInterval int
}

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// ScreenHost provides the view-model of the current profile screen.
// *profile.Host implements it.
type ScreenHost interface {
	Current() *profile.ViewModel
	Reload() *profile.ViewModel
}

// HandlerConfig holds configuration for creating a new Handler
type HandlerConfig struct {
	Renderer          Renderer
	Logger            Logger
	Screens           ScreenHost
	UIRefreshInterval int
}

// NewHandler creates a new Handler with injected dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		renderer:          cfg.Renderer,
		logger:            cfg.Logger,
		screens:           cfg.Screens,
		uiRefreshInterval: cfg.UIRefreshInterval,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleProfile)
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/profile", h.handleProfileAPI)
	mux.HandleFunc("/api/profile/reload", h.handleReload)
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Printf("failed to render health: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleProfile serves the profile page for the current screen.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap := h.screens.Current().Snapshot()
	if err := h.renderer.RenderProfilePage(w, snap, h.uiRefreshInterval); err != nil {
		h.logger.Printf("failed to render profile page: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleProfileAPI returns the current screen state as JSON.
func (h *Handler) handleProfileAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	snap := h.screens.Current().Snapshot()
	if err := h.renderer.RenderProfileJSON(w, snap); err != nil {
		h.logger.Printf("failed to render profile JSON: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handleReload discards the current screen and opens a new one.
// Browsers are redirected back to the page; API clients get the new state.
func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	vm := h.screens.Reload()
	h.logger.Printf("reloading profile screen (fetch %s)", vm.FetchID())

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := h.renderer.RenderProfileJSON(w, vm.Snapshot()); err != nil {
		h.logger.Printf("failed to render profile JSON: %v", err)
	}
}

// StdLogger wraps the standard log package to implement Logger interface.
type StdLogger struct{}

func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

func (l *StdLogger) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}
