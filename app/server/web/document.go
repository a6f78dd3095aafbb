package web

import (
	"github.com/umputun/shade/app/layout"
	"github.com/umputun/shade/app/theme"
)

// document is the rendered page state the theme controller works on.
// It satisfies theme.Root, the toggles are the registered theme.Control handles.
type document struct {
	dark    bool
	toggles []*toggleView
}

// toggleView is a theme toggle control as rendered by the toggle partial.
type toggleView struct {
	ID     string
	Label  string
	Action string
	Sun    *iconView // nil if the control has no sun icon
	Moon   *iconView // nil if the control has no moon icon
}

// iconView is a single toggle icon, Hidden maps to the "hidden" class.
type iconView struct {
	Hidden bool
}

// newDocument builds the document for a layout. Toggles are collected once here.
func newDocument(cfg layout.Config, action string) *document {
	doc := &document{toggles: make([]*toggleView, 0, len(cfg.Controls))}
	for _, c := range cfg.Controls {
		tv := &toggleView{ID: c.ID, Label: c.Label, Action: action}
		if tv.Label == "" {
			tv.Label = "Toggle theme"
		}
		if c.HasIcon(layout.IconSun) {
			tv.Sun = &iconView{}
		}
		if c.HasIcon(layout.IconMoon) {
			tv.Moon = &iconView{}
		}
		doc.toggles = append(doc.toggles, tv)
	}
	return doc
}

// SetMarker sets or clears the dark class on the document root.
func (d *document) SetMarker(on bool) { d.dark = on }

// controls returns the toggles as theme controls.
func (d *document) controls() []theme.Control {
	res := make([]theme.Control, len(d.toggles))
	for i, tv := range d.toggles {
		res[i] = tv
	}
	return res
}

// Icons returns both icons, ok is false if either is missing.
func (t *toggleView) Icons() (sun, moon theme.Icon, ok bool) {
	if t.Sun == nil || t.Moon == nil {
		return nil, nil, false
	}
	return t.Sun, t.Moon, true
}

// SetHidden sets icon visibility.
func (i *iconView) SetHidden(hidden bool) { i.Hidden = hidden }
