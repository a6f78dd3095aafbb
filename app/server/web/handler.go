// Package web provides HTTP handlers for the theme-aware web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"

	"github.com/go-pkgz/lcw/v2"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/shade/app/layout"
)

//go:generate moq -out mocks/layouts.go -pkg mocks -skip-ensure -fmt goimports . LayoutProvider

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// LayoutProvider returns the active page layout.
type LayoutProvider interface {
	Current() (layout.Config, uint64)
	OnReload(fn func())
}

// Config holds web handler configuration.
type Config struct {
	BaseURL      string
	CookieMaxAge time.Duration // theme cookie lifetime, 0 means one year
	CookieSecure bool          // set Secure flag on the theme cookie
	CacheSize    int           // max rendered pages kept, 0 means default
}

// Handler handles web UI requests.
type Handler struct {
	layouts      LayoutProvider
	highlighter  *Highlighter
	tmpl         *template.Template
	pages        lcw.LoadingCache[[]byte]
	baseURL      string
	cookieMaxAge time.Duration
	cookieSecure bool
}

// New creates a new web handler.
func New(layouts LayoutProvider, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 64
	}
	pages, err := lcw.NewLruCache(lcw.NewOpts[[]byte]().MaxKeys(cacheSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	maxAge := cfg.CookieMaxAge
	if maxAge <= 0 {
		maxAge = 365 * 24 * time.Hour // 1 year
	}

	h := &Handler{
		layouts:      layouts,
		highlighter:  NewHighlighter(),
		tmpl:         tmpl,
		pages:        pages,
		baseURL:      cfg.BaseURL,
		cookieMaxAge: maxAge,
		cookieSecure: cfg.CookieSecure,
	}
	layouts.OnReload(h.purgePages)
	return h, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme", h.handleThemeToggle)
	r.HandleFunc("GET /web/theme", h.handleThemeState)
}

// Close releases the page cache.
func (h *Handler) Close() error {
	if err := h.pages.Close(); err != nil {
		return fmt.Errorf("failed to close page cache: %w", err)
	}
	return nil
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("")

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err = tmpl.New("base.html").Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"theme-toggle"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		if _, parseErr := tmpl.New(name).Parse(string(content)); parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Title   string
	Content string
	Dark    bool
	Theme   string
	Toggles []*toggleView
	Layout  template.HTML // highlighted layout source
	BaseURL string
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// cookiePath returns the path for cookies (base URL with trailing slash or "/").
func (h *Handler) cookiePath() string {
	if h.baseURL == "" {
		return "/"
	}
	return h.baseURL + "/"
}

// purgePages drops all rendered pages.
func (h *Handler) purgePages() {
	h.pages.Invalidate(func(string) bool { return true })
}
