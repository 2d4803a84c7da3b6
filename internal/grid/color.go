// Package grid implements the attributed cell matrix that the emulator
// mutates and the renderer reads: Cell, Color, Row, Grid, and the bounded
// scrollback FIFO.
package grid

// ColorKind discriminates the three ways a Color can be specified.
type ColorKind uint8

const (
	// ColorDefault defers to the theme's default foreground/background.
	ColorDefault ColorKind = iota
	// ColorPalette selects one of the 256 palette entries.
	ColorPalette
	// ColorTrueColor carries an explicit RGBA value.
	ColorTrueColor
)

// Color is a tagged union: theme-default sentinel, a palette index 0-255,
// or a true-color RGBA value.
type Color struct {
	Kind  ColorKind
	Index uint8
	R, G, B, A uint8
}

// DefaultColor returns the theme-default sentinel color.
func DefaultColor() Color {
	return Color{Kind: ColorDefault}
}

// PaletteColor returns a color referencing palette index i.
func PaletteColor(i uint8) Color {
	return Color{Kind: ColorPalette, Index: i}
}

// TrueColor returns an explicit RGBA color.
func TrueColor(r, g, b, a uint8) Color {
	return Color{Kind: ColorTrueColor, R: r, G: g, B: b, A: a}
}

// IsDefault reports whether c is the theme-default sentinel.
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// Equal reports whether two colors are the same tagged value.
func (c Color) Equal(o Color) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case ColorPalette:
		return c.Index == o.Index
	case ColorTrueColor:
		return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
	default:
		return true
	}
}
