package config

import (
	"github.com/vtrender/termframe/internal/suggest"
	"github.com/vtrender/termframe/internal/xerr"
)

// StyleRegistry resolves a user-supplied window style name to a
// WindowStyle, mirroring theme.Registry's name lookup and suggestion
// fallback.
type StyleRegistry struct {
	styles map[string]WindowStyle
	names  []string
}

// NewStyleRegistry returns a registry seeded with the built-in "macos"
// style.
func NewStyleRegistry() *StyleRegistry {
	r := &StyleRegistry{styles: make(map[string]WindowStyle)}
	r.Register("macos", DefaultWindowStyle())
	return r
}

// Register adds or replaces a named window style.
func (r *StyleRegistry) Register(name string, s WindowStyle) {
	if _, exists := r.styles[name]; !exists {
		r.names = append(r.names, name)
	}
	r.styles[name] = s
}

// Resolve looks up name, returning Suggestions ranked by similarity to
// known style names when nothing matches.
func (r *StyleRegistry) Resolve(name string) (style WindowStyle, ok bool, hint suggest.Suggestions) {
	if s, found := r.styles[name]; found {
		return s, true, suggest.Suggestions{}
	}
	return WindowStyle{}, false, suggest.New(name, r.names)
}

// ErrUnknownStyle formats a "no such window style" message including
// name suggestions, if any.
func ErrUnknownStyle(name string, hint suggest.Suggestions) error {
	return xerr.UnknownName("window style", name, hint)
}
