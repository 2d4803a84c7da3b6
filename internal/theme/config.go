package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vtrender/termframe/internal/grid"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a theme file: either a single fixed
// palette or a light/dark pair, matching whichever fields are present.
type Document struct {
	Colors *ColorsDoc `toml:"colors" yaml:"colors" json:"colors,omitempty"`
	Modes  *ModesDoc  `toml:"modes" yaml:"modes" json:"modes,omitempty"`
}

// ModesDoc carries the adaptive light/dark color pair.
type ModesDoc struct {
	Dark  ColorsDoc `toml:"dark" yaml:"dark" json:"dark"`
	Light ColorsDoc `toml:"light" yaml:"light" json:"light"`
}

// ColorsDoc is one mode's colors: background, foreground, and a sparse
// palette override keyed by index (0-255).
type ColorsDoc struct {
	Background string            `toml:"background" yaml:"background" json:"background"`
	Foreground string            `toml:"foreground" yaml:"foreground" json:"foreground"`
	Palette    map[string]string `toml:"palette" yaml:"palette" json:"palette,omitempty"`
}

// Decode parses theme file content, choosing the format from ext
// (".toml", ".yaml"/".yml", ".json").
func Decode(data []byte, ext string) (Document, error) {
	var doc Document
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml", "":
		_, err = toml.Decode(string(data), &doc)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	default:
		return Document{}, fmt.Errorf("theme: unrecognized format %q", ext)
	}
	if err != nil {
		return Document{}, fmt.Errorf("theme: decode: %w", err)
	}
	return doc, nil
}

// DecodeFile decodes a theme document, inferring its format from path's
// extension.
func DecodeFile(data []byte, path string) (Document, error) {
	return Decode(data, filepath.Ext(path))
}

// ToAdaptiveTheme converts a decoded Document into an AdaptiveTheme. A
// fixed (Colors-only) document resolves to the same Theme for both
// modes; an adaptive (Modes) document resolves to its own dark/light
// pair.
func (d Document) ToAdaptiveTheme() (AdaptiveTheme, error) {
	if d.Modes != nil {
		dark, err := d.Modes.Dark.toTheme()
		if err != nil {
			return AdaptiveTheme{}, err
		}
		light, err := d.Modes.Light.toTheme()
		if err != nil {
			return AdaptiveTheme{}, err
		}
		return AdaptiveTheme{Dark: dark, Light: light}, nil
	}
	if d.Colors != nil {
		t, err := d.Colors.toTheme()
		if err != nil {
			return AdaptiveTheme{}, err
		}
		return Fixed(t), nil
	}
	return AdaptiveTheme{}, fmt.Errorf("theme: document has neither colors nor modes")
}

func (cd ColorsDoc) toTheme() (Theme, error) {
	bg, err := parseHexColor(cd.Background)
	if err != nil {
		return Theme{}, fmt.Errorf("background: %w", err)
	}
	fg, err := parseHexColor(cd.Foreground)
	if err != nil {
		return Theme{}, fmt.Errorf("foreground: %w", err)
	}

	overrides := make(map[uint8]grid.Color, len(cd.Palette))
	for k, v := range cd.Palette {
		idx, err := parsePaletteIndex(k)
		if err != nil {
			return Theme{}, err
		}
		col, err := parseHexColor(v)
		if err != nil {
			return Theme{}, fmt.Errorf("palette[%s]: %w", k, err)
		}
		overrides[idx] = col
	}

	return NewTheme(bg, fg, nil, overrides), nil
}

func parsePaletteIndex(s string) (uint8, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("palette index %q out of range 0-255", s)
	}
	return uint8(n), nil
}

// parseHexColor parses a "#rrggbb" or "#rrggbbaa" string into a
// grid.Color. It does not use a CSS color parser: theme files only ever
// carry hex triples/quads, so a small dedicated parser avoids pulling in
// the full grammar (named colors, hsl(), rgb() functions) for a format
// this narrow.
func parseHexColor(s string) (grid.Color, error) {
	s = strings.TrimPrefix(s, "#")
	var r, g, b, a uint8 = 0, 0, 0, 0xff
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return grid.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return grid.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	default:
		return grid.Color{}, fmt.Errorf("invalid hex color %q: expected #rrggbb or #rrggbbaa", s)
	}
	return grid.TrueColor(r, g, b, a), nil
}
