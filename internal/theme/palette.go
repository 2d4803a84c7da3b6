// Package theme resolves the grid's tagged Color values into concrete
// RGBA, and models the light/dark adaptive theme pair a rendering session
// picks from.
package theme

import "github.com/vtrender/termframe/internal/grid"

// Palette holds the 256 indexed colors a PaletteColor resolves against.
type Palette [256]grid.Color

// DefaultPalette builds the standard xterm-256 palette: the 16 ANSI
// colors (0-15), a 6x6x6 color cube (16-231), and a 24-step grayscale
// ramp (232-255).
func DefaultPalette() Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		p[i] = defaultPaletteEntry(uint8(i))
	}
	return p
}

func defaultPaletteEntry(i uint8) grid.Color {
	switch {
	case i == 0:
		return rgb(0x00, 0x00, 0x00)
	case i == 7:
		return rgb(0xc0, 0xc0, 0xc0)
	case i == 8:
		return rgb(0x80, 0x80, 0x80)
	case i == 15:
		return rgb(0xff, 0xff, 0xff)
	case i >= 1 && i <= 6 || i >= 9 && i <= 14:
		k := uint8(0x80)
		if i&8 != 0 {
			k = 0xff
		}
		r := (i & 1) * k
		g := ((i >> 1) & 1) * k
		b := ((i >> 2) & 1) * k
		return rgb(r, g, b)
	case i >= 16 && i < 232:
		levels := [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}
		j := i - 16
		r := levels[(j/36)%6]
		g := levels[(j/6)%6]
		b := levels[j%6]
		return rgb(r, g, b)
	default: // 232-255
		j := i - 232
		c := 8 + j*10
		return rgb(c, c, c)
	}
}

func rgb(r, g, b uint8) grid.Color {
	return grid.TrueColor(r, g, b, 0xff)
}

// WithOverrides returns a copy of the default palette with entries from
// overrides applied sparsely, keyed by palette index.
func WithOverrides(overrides map[uint8]grid.Color) Palette {
	p := DefaultPalette()
	for i, c := range overrides {
		p[i] = c
	}
	return p
}
