package web

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"gopkg.in/yaml.v3"

	"github.com/umputun/shade/app/enum"
	"github.com/umputun/shade/app/layout"
	"github.com/umputun/shade/app/theme"
)

// handleIndex renders the main page with the resolved theme applied.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg, gen := h.layouts.Current()
	doc := newDocument(cfg, h.url("/web/theme"))
	ctrl := theme.New(h.newCookiePrefs(w, r), doc, doc.controls())
	current := ctrl.Init(clientHint{r: r})

	key := strconv.FormatUint(gen, 10) + ":" + current.String()
	page, err := h.pages.Get(key, func() ([]byte, error) {
		return h.render(cfg, doc, current)
	})
	if err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		log.Printf("[WARN] failed to write page: %v", err)
	}
}

// render executes the page template for the document state.
func (h *Handler) render(cfg layout.Config, doc *document, current enum.Theme) ([]byte, error) {
	src, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}

	data := templateData{
		Title:   cfg.Title,
		Content: cfg.Content,
		Dark:    doc.dark,
		Theme:   current.String(),
		Toggles: doc.toggles,
		Layout:  h.highlighter.YAML(string(src), current),
		BaseURL: h.baseURL,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// handleThemeToggle switches the theme between light and dark.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	cfg, _ := h.layouts.Current()
	doc := newDocument(cfg, h.url("/web/theme"))
	ctrl := theme.New(h.newCookiePrefs(w, r), doc, doc.controls())
	ctrl.Init(clientHint{r: r})
	next := ctrl.Toggle()
	log.Printf("[DEBUG] theme toggled to %s", next)

	if r.Header.Get("HX-Request") == "true" {
		// trigger full page refresh, the root class changes
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, h.backURL(r), http.StatusSeeOther)
}

// handleThemeState returns the resolved theme without changing anything.
func (h *Handler) handleThemeState(w http.ResponseWriter, r *http.Request) {
	prefs := h.newCookiePrefs(w, r)
	stored, ok := prefs.Get(theme.Key)
	systemDark := clientHint{r: r}.PrefersDark()
	rest.RenderJSON(w, rest.JSON{
		"theme":       theme.Resolve(stored, ok, systemDark),
		"stored":      stored,
		"system_dark": systemDark,
	})
}

// backURL returns the same-site referer path to return to after a toggle, or the index.
func (h *Handler) backURL(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return h.url("/")
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != r.Host) || !strings.HasPrefix(u.Path, "/") ||
		strings.HasPrefix(u.Path, "//") {
		return h.url("/")
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
