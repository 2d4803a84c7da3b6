package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vtrender/termframe/internal/grid"
	"github.com/vtrender/termframe/internal/theme"
)

// Options gathers every input the renderer needs to turn a Grid
// snapshot into an SVG document.
type Options struct {
	Theme        theme.Theme
	Font         FontConfig
	LineHeight   float64 // multiple of em, default 1.2
	Precision    int     // decimal digits, 1-6
	FaintOpacity float64
	BoldIsBright bool
	VarPalette   bool
	Stroke       *float64
	Chrome       *ChromeOptions // nil disables window chrome
}

// Render writes grid g as a standalone SVG document to w.
func Render(w io.Writer, g *grid.Grid, opt Options) error {
	width, height := g.Dimensions()
	fp := opt.Precision

	cellWidth := round(opt.Font.Metrics.Width, fp)
	lineHeight := round(opt.LineHeight, fp)
	docWidth := round(float64(width)*cellWidth, fp)
	docHeight := round(float64(height)*lineHeight, fp)
	baselineOffset := round((opt.LineHeight+opt.Font.Metrics.Descender+opt.Font.Metrics.Ascender)/2, fp)

	pal := newPaletteBuilder(opt.Theme, opt.VarPalette)

	rows := g.VisibleRows()

	bgPaths := renderBackground(rows, width, height, pal, cellWidth, lineHeight, fp, opt.Stroke)
	textEl := renderText(rows, opt, pal, cellWidth, lineHeight, baselineOffset, fp)

	var body strings.Builder
	fmt.Fprintf(&body, `<rect width="100%%" height="100%%" fill="%s"/>`, pal.Background(grid.DefaultColor()).CSS())
	body.WriteString("\n")
	fmt.Fprintf(&body, `<svg viewBox="0 0 %s %s" width="%sem" height="%sem">`,
		formatNum(docWidth), formatNum(docHeight), formatNum(docWidth), formatNum(docHeight))
	body.WriteString("\n<g>")
	body.WriteString(bgPaths)
	body.WriteString("</g>\n")
	body.WriteString(textEl)
	body.WriteString("</svg>\n")

	style := renderStyle(pal)

	inner := style + body.String()

	if opt.Chrome != nil {
		return renderChrome(w, inner, docWidth, docHeight, *opt.Chrome, fp)
	}

	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" font-family="%s" font-size="%gpx" viewBox="0 0 %s %s" width="%sem" height="%sem">`,
		escapeAttr(strings.Join(opt.Font.Families, ", ")), opt.Font.Size,
		formatNum(docWidth), formatNum(docHeight), formatNum(docWidth), formatNum(docHeight))
	w.Write([]byte("\n"))
	w.Write([]byte(inner))
	w.Write([]byte("</svg>\n"))
	return nil
}

func renderStyle(pal *paletteBuilder) string {
	vars := pal.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<style>.terminal {")
	for _, kv := range vars {
		fmt.Fprintf(&b, "%s:%s;", kv[0], kv[1])
	}
	b.WriteString("}</style>\n")
	return b.String()
}

func renderBackground(rows []grid.Row, width, height int, pal *paletteBuilder, cellWidth, lineHeight float64, fp int, stroke *float64) string {
	shapes := Trace(width, height, func(x, y int) (colorRef, bool) {
		if y >= len(rows) {
			return colorRef{}, false
		}
		cells := rows[y].Cells
		if x >= len(cells) {
			return colorRef{}, false
		}
		c := cells[x]
		bg := c.Attrs.Bg
		if c.Attrs.Reverse {
			bg = resolveReverseBg(c.Attrs, pal)
		}
		if bg.IsDefault() {
			return colorRef{}, false
		}
		return pal.Background(bg), true
	})

	var b strings.Builder
	for _, shape := range shapes {
		var d strings.Builder
		for _, contour := range shape.Path {
			if d.Len() > 0 {
				d.WriteString(" ")
			}
			d.WriteString(buildPath(contour, cellWidth, lineHeight, fp))
		}
		if stroke != nil {
			fmt.Fprintf(&b, `<path fill="%s" stroke="%s" stroke-width="%s" d="%s"/>`,
				shape.Key.CSS(), shape.Key.CSS(), formatNum(round(*stroke, fp)), d.String())
		} else {
			fmt.Fprintf(&b, `<path fill="%s" d="%s"/>`, shape.Key.CSS(), d.String())
		}
	}
	return b.String()
}

func resolveReverseBg(attrs grid.Attributes, pal *paletteBuilder) grid.Color {
	fg := attrs.Fg
	if fg.IsDefault() {
		return grid.PaletteColor(0) // arbitrary non-default sentinel; caller only checks IsDefault
	}
	return fg
}

func renderText(rows []grid.Row, opt Options, pal *paletteBuilder, cellWidth, lineHeight, baselineOffset float64, fp int) string {
	var b strings.Builder
	for row, r := range rows {
		clusters := clusterByAttributes(r.Cells)
		if len(clusters) == 0 {
			continue
		}
		y := round(float64(row)*lineHeight+baselineOffset, fp)
		fmt.Fprintf(&b, `<text y="%s">`, formatNum(y))

		col := 0
		for _, cl := range clusters {
			clStartCol := col
			subs := subdivide(cl, opt.Font)
			for i, sc := range subs {
				writeTspan(&b, sc, cl.attrs, clStartCol, i == 0, opt, pal, cellWidth, fp)
				clStartCol += sc.cellCount
			}
			col += countCells(cl.cells)
		}
		b.WriteString("</text>\n")
	}
	return b.String()
}

func countCells(cells []grid.Cell) int {
	n := 0
	for _, c := range cells {
		n += c.Width
	}
	return n
}

func writeTspan(b *strings.Builder, sc subcluster, attrs grid.Attributes, col int, first bool, opt Options, pal *paletteBuilder, cellWidth float64, fp int) {
	b.WriteString("<tspan")
	if first || sc.forceXY {
		fmt.Fprintf(b, ` x="%s"`, formatNum(round(float64(col)*cellWidth, fp)))
	}
	if sc.forceLength {
		fmt.Fprintf(b, ` textLength="%s" lengthAdjust="spacingAndGlyphs"`, formatNum(round(float64(sc.cellCount)*cellWidth, fp)))
	}

	if attrs.Intensity == grid.IntensityBold {
		b.WriteString(` font-weight="bold"`)
	} else if attrs.Intensity == grid.IntensityHalf && opt.FaintOpacity < 1 {
		fmt.Fprintf(b, ` opacity="%s"`, formatNum(round(opt.FaintOpacity, fp)))
	}
	if attrs.Italic {
		b.WriteString(` font-style="italic"`)
	}

	fg := attrs.Fg
	var fgRef colorRef
	if attrs.Reverse {
		bg := attrs.Bg
		if bg.IsDefault() {
			fgRef = pal.Background(grid.DefaultColor())
		} else {
			fgRef = pal.Background(bg)
		}
	} else if attrs.Intensity == grid.IntensityBold && opt.BoldIsBright {
		fgRef = pal.BrightForeground(fg)
	} else {
		fgRef = pal.Foreground(fg)
	}
	if !fg.IsDefault() || attrs.Reverse || (attrs.Intensity == grid.IntensityBold && opt.BoldIsBright) {
		fmt.Fprintf(b, ` fill="%s"`, fgRef.CSS())
	}

	if attrs.Strikethrough || attrs.Underline != grid.UnderlineNone {
		var decos []string
		if attrs.Underline != grid.UnderlineNone {
			decos = append(decos, "underline")
		}
		if attrs.Strikethrough {
			decos = append(decos, "line-through")
		}
		fmt.Fprintf(b, ` text-decoration="%s"`, strings.Join(decos, " "))
		if attrs.Underline != grid.UnderlineNone && !attrs.UnderlineColor.IsDefault() {
			uc := pal.Foreground(attrs.UnderlineColor)
			fmt.Fprintf(b, ` text-decoration-color="%s"`, uc.CSS())
		}
		if style := underlineCSSStyle(attrs.Underline); style != "" {
			fmt.Fprintf(b, ` text-decoration-style="%s"`, style)
		}
	}

	b.WriteString(">")
	b.WriteString(escapeText(sc.text))
	b.WriteString("</tspan>")
}

func underlineCSSStyle(u grid.UnderlineStyle) string {
	switch u {
	case grid.UnderlineDouble:
		return "double"
	case grid.UnderlineCurly:
		return "wavy"
	case grid.UnderlineDotted:
		return "dotted"
	case grid.UnderlineDashed:
		return "dashed"
	default:
		return ""
	}
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
