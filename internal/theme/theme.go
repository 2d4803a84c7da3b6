package theme

import "github.com/vtrender/termframe/internal/grid"

// Theme is a fully resolved set of colors: background, foreground, an
// optional bright foreground (used for bold text when no explicit
// foreground is set), and a 256-entry palette.
type Theme struct {
	Background      grid.Color
	Foreground      grid.Color
	BrightForeground *grid.Color
	Palette         Palette
}

// NewTheme builds a Theme, filling any unset palette entries from
// DefaultPalette.
func NewTheme(bg, fg grid.Color, brightFg *grid.Color, overrides map[uint8]grid.Color) Theme {
	return Theme{
		Background:       bg,
		Foreground:       fg,
		BrightForeground: brightFg,
		Palette:          WithOverrides(overrides),
	}
}

// ResolveForeground resolves c as a foreground color: the default
// sentinel maps to t.Foreground (or t.BrightForeground when bold and one
// is configured), a palette index maps through t.Palette, and a true
// color passes through unchanged.
func (t Theme) ResolveForeground(c grid.Color, bold bool) grid.Color {
	if c.IsDefault() {
		if bold && t.BrightForeground != nil {
			return *t.BrightForeground
		}
		return t.Foreground
	}
	return t.resolve(c)
}

// ResolveBackground resolves c as a background color: the default
// sentinel maps to t.Background, otherwise identical to ResolveForeground.
func (t Theme) ResolveBackground(c grid.Color) grid.Color {
	if c.IsDefault() {
		return t.Background
	}
	return t.resolve(c)
}

// ResolveUnderline resolves an underline color attribute, falling back
// to the resolved text foreground when unset (matching the terminal
// convention that an unspecified underline color follows the glyph).
func (t Theme) ResolveUnderline(c grid.Color, textFg grid.Color) grid.Color {
	if c.IsDefault() {
		return textFg
	}
	return t.resolve(c)
}

func (t Theme) resolve(c grid.Color) grid.Color {
	if c.Kind == grid.ColorPalette {
		return t.Palette[c.Index]
	}
	return c
}
