package theme

import "github.com/vtrender/termframe/internal/grid"

// Mode selects which half of an AdaptiveTheme applies.
type Mode int

const (
	Dark Mode = iota
	Light
)

// AdaptiveTheme pairs a light and a dark Theme; Resolve picks one by Mode.
type AdaptiveTheme struct {
	Light Theme
	Dark  Theme
}

// Resolve returns the Theme for the given Mode.
func (a AdaptiveTheme) Resolve(mode Mode) Theme {
	if mode == Light {
		return a.Light
	}
	return a.Dark
}

// Fixed returns an AdaptiveTheme that resolves to t regardless of Mode,
// for theme configs that name a single, non-adaptive theme.
func Fixed(t Theme) AdaptiveTheme {
	return AdaptiveTheme{Light: t, Dark: t}
}

func c(r, g, b uint8) grid.Color { return grid.TrueColor(r, g, b, 0xff) }

// defaultDarkPalette and defaultLightPalette carry the 16 ANSI entries of
// the built-in dark/light themes; the 16-255 range falls back to
// DefaultPalette's xterm-256 derivation.
func defaultDarkPalette() map[uint8]grid.Color {
	return map[uint8]grid.Color{
		0:  c(0x28, 0x2c, 0x34), // black
		1:  c(0xd1, 0x72, 0x77), // red
		2:  c(0xa1, 0xc2, 0x81), // green
		3:  c(0xde, 0x9b, 0x64), // yellow
		4:  c(0x74, 0xad, 0xe9), // blue
		5:  c(0xbb, 0x7c, 0xd7), // magenta
		6:  c(0x29, 0xa9, 0xbc), // cyan
		7:  c(0xac, 0xb2, 0xbe), // white
		8:  c(0x67, 0x6f, 0x82), // bright black
		9:  c(0xe6, 0x67, 0x6d), // bright red
		10: c(0xa9, 0xd4, 0x7f), // bright green
		11: c(0xde, 0x9b, 0x64), // bright yellow
		12: c(0x66, 0xac, 0xff), // bright blue
		13: c(0xc6, 0x71, 0xeb), // bright magenta
		14: c(0x69, 0xc6, 0xd1), // bright cyan
		15: c(0xcc, 0xcc, 0xcc), // bright white
	}
}

func defaultLightPalette() map[uint8]grid.Color {
	return map[uint8]grid.Color{
		0:  c(0x00, 0x00, 0x00), // black
		1:  c(0xc9, 0x1b, 0x00), // red
		2:  c(0x00, 0xc2, 0x00), // green
		3:  c(0xc7, 0xc4, 0x00), // yellow
		4:  c(0x02, 0x25, 0xc7), // blue
		5:  c(0xc9, 0x30, 0xc7), // magenta
		6:  c(0x00, 0xc5, 0xc7), // cyan
		7:  c(0xc7, 0xc7, 0xc7), // white
		8:  c(0x67, 0x67, 0x67), // bright black
		9:  c(0xff, 0x6d, 0x67), // bright red
		10: c(0x5f, 0xf9, 0x67), // bright green
		11: c(0xfe, 0xfb, 0x67), // bright yellow
		12: c(0x68, 0x71, 0xff), // bright blue
		13: c(0xff, 0x76, 0xff), // bright magenta
		14: c(0x5f, 0xfd, 0xff), // bright cyan
		15: c(0xff, 0xfe, 0xff), // bright white
	}
}

// DefaultAdaptiveTheme returns the built-in dark/light theme pair that
// every Registry registers under the name "default".
func DefaultAdaptiveTheme() AdaptiveTheme {
	darkOverrides := defaultDarkPalette()
	dark := NewTheme(
		c(0x28, 0x2c, 0x30),
		c(0xac, 0xb2, 0xbe),
		ptr(darkOverrides[15]),
		darkOverrides,
	)

	lightOverrides := defaultLightPalette()
	light := NewTheme(
		c(0xf9, 0xf9, 0xf9),
		c(0x2a, 0x2c, 0x33),
		ptr(lightOverrides[15]),
		lightOverrides,
	)

	return AdaptiveTheme{Light: light, Dark: dark}
}

func ptr(c grid.Color) *grid.Color { return &c }
