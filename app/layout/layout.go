// Package layout loads the page layout: title, content and the toggle controls
// placed in the document. The layout comes from a YAML file validated against
// an embedded JSON schema and can be reloaded on file change.
package layout

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run internal/schema/main.go schema.json

// icon names accepted in a control's icon list
const (
	IconSun  = "sun"
	IconMoon = "moon"
)

// Config represents the layout configuration file (shade.yml).
type Config struct {
	Title    string          `yaml:"title" json:"title" jsonschema:"description=page title"`
	Content  string          `yaml:"content,omitempty" json:"content,omitempty" jsonschema:"description=page body text"`
	Controls []ControlConfig `yaml:"controls,omitempty" json:"controls,omitempty" jsonschema:"description=theme toggle controls in page order"`
}

// ControlConfig represents a single theme toggle control.
type ControlConfig struct {
	ID    string   `yaml:"id" json:"id" jsonschema:"description=unique control id"`
	Label string   `yaml:"label,omitempty" json:"label,omitempty"`
	Icons []string `yaml:"icons,omitempty" json:"icons,omitempty" jsonschema:"enum=sun,enum=moon"` // nil means both
}

// HasIcon reports whether the control renders the named icon.
func (c ControlConfig) HasIcon(name string) bool {
	if c.Icons == nil {
		return true
	}
	for _, ic := range c.Icons {
		if ic == name {
			return true
		}
	}
	return false
}

// Default returns the built-in layout with a toggle in the header and the footer.
func Default() Config {
	return Config{
		Title:   "shade",
		Content: "Pick the light or the dark side.",
		Controls: []ControlConfig{
			{ID: "header", Label: "Toggle theme"},
			{ID: "footer", Label: "Toggle theme"},
		},
	}
}

// Load reads, validates and parses the layout YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from CLI flag, controlled by admin
	if err != nil {
		return Config{}, fmt.Errorf("failed to read layout file: %w", err)
	}

	if err := Verify(data); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse layout file: %w", err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks constraints the schema can't express.
func validate(cfg Config) error {
	if cfg.Title == "" {
		return errors.New("layout title cannot be empty")
	}
	seen := make(map[string]bool, len(cfg.Controls))
	for _, c := range cfg.Controls {
		if c.ID == "" {
			return errors.New("control id cannot be empty")
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate control id %q", c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Store keeps the current layout and swaps it on reload.
// Each reload bumps the generation, used by consumers to drop derived state.
type Store struct {
	mu       sync.RWMutex
	path     string
	cfg      Config
	gen      uint64
	onReload []func()
}

// NewStore makes a layout store. Empty path means the default layout, without reload support.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return &Store{cfg: Default(), gen: 1}, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}
	log.Printf("[INFO] loaded layout from %s, %d control(s)", path, len(cfg.Controls))
	return &Store{path: path, cfg: cfg, gen: 1}, nil
}

// Current returns the active layout and its generation.
func (s *Store) Current() (Config, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.gen
}

// OnReload registers a callback invoked after each successful reload.
func (s *Store) OnReload(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReload = append(s.onReload, fn)
}

// Reload re-reads the layout file. On error the current layout is kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return errors.New("layout file path not set")
	}

	cfg, err := Load(s.path)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.gen++
	callbacks := make([]func(), len(s.onReload))
	copy(callbacks, s.onReload)
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	log.Printf("[INFO] layout reloaded from %s, %d control(s)", s.path, len(cfg.Controls))
	return nil
}

// StartWatcher watches the layout file and reloads it on change.
// The watcher stops when the context is canceled.
func (s *Store) StartWatcher(ctx context.Context) error {
	if s.path == "" {
		return errors.New("layout file path not set")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	// watch the directory, editors replace files with atomic renames
	dir := filepath.Dir(s.path)
	filename := filepath.Base(s.path)

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	log.Printf("[INFO] watching layout file %s for changes", s.path)

	go func() {
		defer watcher.Close()

		var debounceTimer *time.Timer
		const debounceDelay = 100 * time.Millisecond

		for {
			select {
			case <-ctx.Done():
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				log.Printf("[INFO] layout watcher stopped")
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					if err := s.Reload(); err != nil {
						log.Printf("[WARN] failed to reload layout: %v", err)
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARN] layout watcher error: %v", err)
			}
		}
	}()

	return nil
}
