package theme

import (
	"strings"

	"github.com/vtrender/termframe/internal/suggest"
	"github.com/vtrender/termframe/internal/xerr"
)

// Registry resolves a user-supplied theme name to an AdaptiveTheme,
// accepting either a theme's canonical name or its "+"-spelled alias
// (spaces written as "+", e.g. "gruvbox+dark" for "gruvbox dark").
// Lookup is case-sensitive, and kebab-case spellings such as
// "gruvbox-dark" are not recognized as aliases.
type Registry struct {
	themes  map[string]AdaptiveTheme
	aliases map[string]string // alias -> canonical name
	names   []string          // canonical names, for suggestions
}

// NewRegistry builds an empty Registry seeded with the built-in "default"
// theme.
func NewRegistry() *Registry {
	r := &Registry{
		themes:  make(map[string]AdaptiveTheme),
		aliases: make(map[string]string),
	}
	r.Register("default", DefaultAdaptiveTheme())
	return r
}

// Register adds or replaces a theme under name, plus its derived
// "+"-spelled alias.
func (r *Registry) Register(name string, t AdaptiveTheme) {
	if _, exists := r.themes[name]; !exists {
		r.names = append(r.names, name)
	}
	r.themes[name] = t
	if alias := canonicalToAlias(name); alias != name {
		r.aliases[alias] = name
	}
}

// Resolve looks up name (or one of its aliases). If nothing matches, it
// returns ok=false along with Suggestions ranked by similarity to the
// known theme names.
func (r *Registry) Resolve(name string) (theme AdaptiveTheme, ok bool, hint suggest.Suggestions) {
	canonical := name
	if n, isAlias := r.aliases[name]; isAlias {
		canonical = n
	} else if strings.Contains(name, "+") {
		canonical = aliasToCanonical(name)
	}
	if t, found := r.themes[canonical]; found {
		return t, true, suggest.Suggestions{}
	}
	return AdaptiveTheme{}, false, suggest.New(name, r.names)
}

// canonicalToAlias derives the "+"-spelled alias for a space-separated
// canonical name, e.g. "gruvbox dark" -> "gruvbox+dark".
func canonicalToAlias(name string) string {
	return strings.ReplaceAll(name, " ", "+")
}

// aliasToCanonical derives the canonical, space-separated spelling from
// a "+"-spelled alias, e.g. "gruvbox+dark" -> "gruvbox dark".
func aliasToCanonical(alias string) string {
	return strings.ReplaceAll(alias, "+", " ")
}

// ErrUnknownTheme formats a "no such theme" message including the
// surviving name suggestions, if any.
func ErrUnknownTheme(name string, hint suggest.Suggestions) error {
	return xerr.UnknownName("theme", name, hint)
}
