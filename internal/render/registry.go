package render

import (
	"fmt"
	"strings"
)

var renderers []Renderer

// Register adds a renderer to the registry. Renderers are listed in the
// order they are registered; a later registration with the same name
// replaces the earlier one in place.
func Register(r Renderer) {
	for i, existing := range renderers {
		if existing.Name() == r.Name() {
			renderers[i] = r
			return
		}
	}
	renderers = append(renderers, r)
}

// Renderers returns all registered renderers in registration order.
func Renderers() []Renderer {
	return renderers
}

// Names returns the registered format names in registration order.
func Names() []string {
	out := make([]string, 0, len(renderers))
	for _, r := range renderers {
		out = append(out, r.Name())
	}
	return out
}

// Lookup returns the renderer registered under name. "yml" is accepted as
// an alias for "yaml".
func Lookup(name string) (Renderer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "yml" {
		name = "yaml"
	}
	for _, r := range renderers {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
}
