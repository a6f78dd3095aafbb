// Package theme implements the light/dark theme controller.
// The controller holds the current theme explicitly and drives side effects
// through small interfaces, so storage and document adapters stay thin.
package theme

import (
	log "github.com/go-pkgz/lgr"

	"github.com/umputun/shade/app/enum"
)

//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/system.go -pkg mocks -skip-ensure -fmt goimports . SystemPreference
//go:generate moq -out mocks/root.go -pkg mocks -skip-ensure -fmt goimports . Root

// Key is the persisted preference key.
const Key = "theme"

// Preferences is a persistent key-value store for the theme choice.
type Preferences interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// SystemPreference reports whether the host environment prefers a dark color scheme.
type SystemPreference interface {
	PrefersDark() bool
}

// Root is the document root carrying the dark marker.
type Root interface {
	SetMarker(on bool)
}

// Icon is a single toggle icon element.
type Icon interface {
	SetHidden(hidden bool)
}

// Control is a toggle control handle. Icons returns ok=false if the control
// doesn't have both icons, such controls are skipped on sync.
type Control interface {
	Icons() (sun, moon Icon, ok bool)
}

// Resolve returns the initial theme for a stored preference and system signal.
// Dark wins only if stored is "dark", or nothing is stored and the system prefers dark.
func Resolve(stored string, ok, systemDark bool) enum.Theme {
	if stored == enum.ThemeDark.String() {
		return enum.ThemeDark
	}
	if (!ok || stored == "") && systemDark {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

// SyncIcons sets icon visibility on every control for the given theme.
// The sun is shown in dark mode and the moon in light mode, i.e. the icon shows
// what a click switches to.
func SyncIcons(t enum.Theme, controls []Control) {
	dark := t.IsDark()
	for _, c := range controls {
		sun, moon, ok := c.Icons()
		if !ok {
			continue
		}
		sun.SetHidden(!dark)
		moon.SetHidden(dark)
	}
}

// Controller applies and toggles the theme for one document.
type Controller struct {
	prefs    Preferences
	root     Root
	controls []Control
	current  enum.Theme
}

// New makes a controller for the given document root and toggle controls.
// Controls are registered once, controls created later are not picked up.
func New(prefs Preferences, root Root, controls []Control) *Controller {
	registered := make([]Control, len(controls))
	copy(registered, controls)
	return &Controller{prefs: prefs, root: root, controls: registered, current: enum.ThemeLight}
}

// Init resolves the initial theme from stored and system preferences and applies it.
func (c *Controller) Init(system SystemPreference) enum.Theme {
	stored, ok := c.prefs.Get(Key)
	systemDark := system != nil && system.PrefersDark()
	t := Resolve(stored, ok, systemDark)
	log.Printf("[DEBUG] resolved theme %s, stored %q, system dark %v", t, stored, systemDark)
	c.Apply(t)
	return t
}

// Apply sets the root marker, persists the choice and syncs icons.
// Persisting is best-effort, a failed write doesn't affect the document.
func (c *Controller) Apply(t enum.Theme) {
	if t != enum.ThemeDark {
		t = enum.ThemeLight
	}
	c.root.SetMarker(t.IsDark())
	if err := c.prefs.Set(Key, t.String()); err != nil {
		log.Printf("[WARN] failed to persist theme %s: %v", t, err)
	}
	c.current = t
	SyncIcons(t, c.controls)
}

// Toggle switches to the opposite theme and returns it.
func (c *Controller) Toggle() enum.Theme {
	next := c.current.Toggle()
	c.Apply(next)
	return next
}

// Theme returns the currently applied theme.
func (c *Controller) Theme() enum.Theme {
	return c.current
}
