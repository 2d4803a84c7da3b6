package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vtrender/termframe/internal/grid"
)

// cssColor formats a resolved grid.Color as a CSS color literal: "#rrggbb"
// for opaque colors (the common case for terminal palettes), or an
// rgba() function when alpha is not fully opaque.
func cssColor(c grid.Color) string {
	if c.A == 0xff {
		hex := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Clamped().Hex()
		return hex
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatNum(round(float64(c.A)/255, 3)))
}

// CSSColor exposes cssColor to callers assembling chrome options outside
// this package (the background color behind the header/screen area).
func CSSColor(c grid.Color) string { return cssColor(c) }
