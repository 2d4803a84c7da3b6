package config

import (
	"github.com/vtrender/termframe/internal/grid"
	"github.com/vtrender/termframe/internal/theme"
)

// WindowStyle describes the chrome rendered around the terminal
// viewport: margin, border, header bar, title text, traffic-light
// buttons, and drop shadow.
type WindowStyle struct {
	Margin  Padding
	Border  WindowBorder
	Header  WindowHeader
	Title   WindowTitle
	Buttons WindowButtons
	Shadow  WindowShadow
}

// Padding is a four-sided padding/margin amount in pixels.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// Uniform returns a Padding with the same value on all four sides.
func Uniform(v float64) Padding { return Padding{v, v, v, v} }

type WindowBorder struct {
	Colors WindowBorderColors
	Width  float64
	Radius float64
}

type WindowBorderColors struct {
	Outer SelectiveColor
	Inner SelectiveColor
}

type WindowHeader struct {
	Color  SelectiveColor
	Height float64
}

type WindowTitle struct {
	Color SelectiveColor
	Font  FontRef
}

// FontRef names the font a piece of chrome text should render with.
type FontRef struct {
	Family []string
	Size   float64
	Weight string
}

type WindowButtons struct {
	Radius   float64
	Spacing  float64
	Close    WindowButton
	Minimize WindowButton
	Maximize WindowButton
}

type WindowButton struct {
	Color SelectiveColor
}

type WindowShadow struct {
	Enabled bool
	Color   SelectiveColor
	X, Y    float64
	Blur    float64
}

// SelectiveColor is a color that is either the same in both modes, or
// switches between a light and a dark variant.
type SelectiveColor struct {
	Uniform  *grid.Color
	Light    grid.Color
	Dark     grid.Color
	adaptive bool
}

// NewUniformColor returns a SelectiveColor that never changes with mode.
func NewUniformColor(c grid.Color) SelectiveColor {
	return SelectiveColor{Uniform: &c}
}

// NewAdaptiveColor returns a SelectiveColor that switches between light
// and dark variants.
func NewAdaptiveColor(light, dark grid.Color) SelectiveColor {
	return SelectiveColor{Light: light, Dark: dark, adaptive: true}
}

// Resolve picks the light or dark variant for mode; a uniform color
// ignores mode entirely.
func (c SelectiveColor) Resolve(mode theme.Mode) grid.Color {
	if !c.adaptive {
		return *c.Uniform
	}
	if mode == theme.Light {
		return c.Light
	}
	return c.Dark
}

// DefaultWindowStyle returns the built-in "macos"-style chrome: a
// rounded title bar with three traffic-light buttons and a soft shadow.
func DefaultWindowStyle() WindowStyle {
	headerBg := NewAdaptiveColor(grid.TrueColor(0xe2, 0xe2, 0xe2, 0xff), grid.TrueColor(0x3a, 0x3a, 0x3a, 0xff))
	titleFg := NewAdaptiveColor(grid.TrueColor(0x33, 0x33, 0x33, 0xff), grid.TrueColor(0xdd, 0xdd, 0xdd, 0xff))
	borderOuter := NewAdaptiveColor(grid.TrueColor(0xb0, 0xb0, 0xb0, 0xff), grid.TrueColor(0x1a, 0x1a, 0x1a, 0xff))
	borderInner := NewUniformColor(grid.TrueColor(0, 0, 0, 0x20))

	return WindowStyle{
		Margin: Uniform(20),
		Border: WindowBorder{
			Colors: WindowBorderColors{Outer: borderOuter, Inner: borderInner},
			Width:  1,
			Radius: 8,
		},
		Header: WindowHeader{Color: headerBg, Height: 32},
		Title: WindowTitle{
			Color: titleFg,
			Font:  FontRef{Family: []string{"Helvetica", "Arial", "sans-serif"}, Size: 13},
		},
		Buttons: WindowButtons{
			Radius:  6,
			Spacing: 20,
			Close:    WindowButton{Color: NewUniformColor(grid.TrueColor(0xff, 0x5f, 0x57, 0xff))},
			Minimize: WindowButton{Color: NewUniformColor(grid.TrueColor(0xff, 0xbd, 0x2e, 0xff))},
			Maximize: WindowButton{Color: NewUniformColor(grid.TrueColor(0x28, 0xc8, 0x40, 0xff))},
		},
		Shadow: WindowShadow{
			Enabled: true,
			Color:   NewUniformColor(grid.TrueColor(0, 0, 0, 0x60)),
			X:       0, Y: 6, Blur: 16,
		},
	}
}
