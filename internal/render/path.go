package render

import (
	"fmt"
	"strconv"
	"strings"
)

// formatNum renders a rounded float as compactly as SVG allows: no
// trailing ".0" for integral values, otherwise the minimal decimal
// representation.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildPath emits one contour as an SVG path data string: "M x,y"
// followed by "Hx"/"Vy" for axis-aligned steps or "x,y" for a diagonal
// step (tracing never actually produces diagonals, but the format
// matches the general cell-boundary-to-em transform either way), closed
// with "Z". Coordinates are in integer boundary-grid units, scaled to em
// by cellWidth/lineHeight and rounded to precision digits.
func buildPath(contour Contour, cellWidth, lineHeight float64, precision int) string {
	fx := func(x int) float64 { return round(float64(x)*cellWidth, precision) }
	fy := func(y int) float64 { return round(float64(y)*lineHeight, precision) }

	var b strings.Builder
	var prev *Point
	for _, p := range contour {
		if prev == nil {
			fmt.Fprintf(&b, "M%s,%s ", formatNum(fx(p.X)), formatNum(fy(p.Y)))
		} else if p.X == prev.X {
			fmt.Fprintf(&b, "V%s ", formatNum(fy(p.Y)))
		} else if p.Y == prev.Y {
			fmt.Fprintf(&b, "H%s ", formatNum(fx(p.X)))
		} else {
			fmt.Fprintf(&b, "%s,%s ", formatNum(fx(p.X)), formatNum(fy(p.Y)))
		}
		q := p
		prev = &q
	}
	b.WriteString("Z")
	return b.String()
}
