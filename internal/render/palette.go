package render

import (
	"fmt"
	"sort"

	"github.com/vtrender/termframe/internal/grid"
	"github.com/vtrender/termframe/internal/theme"
)

// colorRef is what a resolved color collapses to: either a literal CSS
// color, or a reference to one of the document's CSS custom properties
// (when palette-vars is enabled).
type colorRef struct {
	literal string
	varName string
}

// CSS renders the reference as it should appear in a "fill"/"stroke"
// attribute.
func (c colorRef) CSS() string {
	if c.varName != "" {
		return "var(" + c.varName + ")"
	}
	return c.literal
}

// paletteBuilder resolves grid.Color tagged values against a theme,
// optionally recording which default/bright/palette-index colors were
// actually used so the document can emit only the CSS variables it
// needs.
type paletteBuilder struct {
	theme      theme.Theme
	varPalette bool

	usedBg     bool
	usedFg     bool
	usedBrFg   bool
	usedIndex  map[uint8]bool
}

func newPaletteBuilder(th theme.Theme, varPalette bool) *paletteBuilder {
	return &paletteBuilder{theme: th, varPalette: varPalette, usedIndex: make(map[uint8]bool)}
}

// Background resolves a cell's background color attribute.
func (p *paletteBuilder) Background(c grid.Color) colorRef {
	switch {
	case c.IsDefault():
		if !p.varPalette {
			return colorRef{literal: cssColor(p.theme.Background)}
		}
		p.usedBg = true
		return colorRef{varName: "--bg"}
	case c.Kind == grid.ColorPalette:
		resolved := p.theme.ResolveBackground(c)
		if !p.varPalette {
			return colorRef{literal: cssColor(resolved)}
		}
		p.usedIndex[c.Index] = true
		return colorRef{varName: fmt.Sprintf("--c-%d", c.Index)}
	default:
		return colorRef{literal: cssColor(c)}
	}
}

// Foreground resolves a cell's foreground color attribute.
func (p *paletteBuilder) Foreground(c grid.Color) colorRef {
	switch {
	case c.IsDefault():
		if !p.varPalette {
			return colorRef{literal: cssColor(p.theme.Foreground)}
		}
		p.usedFg = true
		return colorRef{varName: "--fg"}
	case c.Kind == grid.ColorPalette:
		resolved := p.theme.ResolveForeground(c, false)
		if !p.varPalette {
			return colorRef{literal: cssColor(resolved)}
		}
		p.usedIndex[c.Index] = true
		return colorRef{varName: fmt.Sprintf("--c-%d", c.Index)}
	default:
		return colorRef{literal: cssColor(c)}
	}
}

// BrightForeground resolves a bold cell's foreground: a default
// attribute maps to the theme's bright foreground (or plain foreground
// if unset), while a low ANSI palette index (0-7) is promoted to its
// bright counterpart (8-15) before resolving normally — matching the
// xterm "bold is bright" convention.
func (p *paletteBuilder) BrightForeground(c grid.Color) colorRef {
	if c.IsDefault() {
		if !p.varPalette {
			bright := p.theme.Foreground
			if p.theme.BrightForeground != nil {
				bright = *p.theme.BrightForeground
			}
			return colorRef{literal: cssColor(bright)}
		}
		p.usedBrFg = true
		return colorRef{varName: "--br-fg"}
	}
	if c.Kind == grid.ColorPalette && c.Index < 8 {
		c = grid.PaletteColor(c.Index + 8)
	}
	return p.Foreground(c)
}

// CSSVariables returns the ":root"-style variable declarations for every
// color actually referenced, in stable (sorted) order.
func (p *paletteBuilder) CSSVariables() [][2]string {
	var vars [][2]string
	if p.usedBg {
		vars = append(vars, [2]string{"--bg", cssColor(p.theme.Background)})
	}
	if p.usedFg {
		vars = append(vars, [2]string{"--fg", cssColor(p.theme.Foreground)})
	}
	if p.usedBrFg {
		bright := p.theme.Foreground
		if p.theme.BrightForeground != nil {
			bright = *p.theme.BrightForeground
		}
		vars = append(vars, [2]string{"--br-fg", cssColor(bright)})
	}

	indices := make([]int, 0, len(p.usedIndex))
	for i := range p.usedIndex {
		indices = append(indices, int(i))
	}
	sort.Ints(indices)
	for _, i := range indices {
		vars = append(vars, [2]string{fmt.Sprintf("--c-%d", i), cssColor(p.theme.Palette[i])})
	}
	return vars
}
