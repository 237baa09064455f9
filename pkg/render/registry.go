package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry resolves output formats to renderers. A renderer is stored under
// its Name and may also answer to aliases ("markdown" for "report"). Lookups
// ignore case and surrounding space, matching what users type for -format.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	aliases   map[string]string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
	}
}

func formatKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds renderer under its Name and the given aliases. A name or
// alias already taken by another renderer is an error and nothing is
// registered.
func (r *Registry) Register(renderer Renderer, aliases ...string) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := formatKey(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	keys := []string{name}
	for _, alias := range aliases {
		if key := formatKey(alias); key != "" && key != name {
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		if r.takenLocked(key) {
			return fmt.Errorf("render: format %q already registered", key)
		}
	}

	r.renderers[name] = renderer
	for _, key := range keys[1:] {
		r.aliases[key] = name
	}
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer, aliases ...string) {
	if err := r.Register(renderer, aliases...); err != nil {
		panic(err)
	}
}

// Get resolves a format name or alias.
func (r *Registry) Get(format string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := formatKey(format)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	renderer, ok := r.renderers[key]
	if !ok {
		return nil, fmt.Errorf("render: format %q not found (available: %v)", format, r.namesLocked())
	}
	return renderer, nil
}

// ForContentType returns the first renderer, by name, producing mediaType.
// Parameters such as charset are ignored on both sides.
func (r *Registry) ForContentType(mediaType string) (Renderer, bool) {
	want := mediaTypeOf(mediaType)
	if want == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.namesLocked() {
		renderer := r.renderers[name]
		if mediaTypeOf(renderer.ContentType()) == want {
			return renderer, true
		}
	}
	return nil, false
}

// List returns the canonical renderer names, sorted. Aliases are not listed.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// Has reports whether format resolves to a renderer.
func (r *Registry) Has(format string) bool {
	_, err := r.Get(format)
	return err == nil
}

func (r *Registry) takenLocked(key string) bool {
	if _, ok := r.renderers[key]; ok {
		return true
	}
	_, ok := r.aliases[key]
	return ok
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mediaTypeOf(contentType string) string {
	base, _, _ := strings.Cut(contentType, ";")
	return formatKey(base)
}
