package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/unilibs/uniwidth"
	"github.com/vtrender/termframe/internal/config"
	"github.com/vtrender/termframe/internal/theme"
)

// ChromeOptions is everything renderChrome needs beyond the already-
// rendered screen content: the window style, resolved light/dark mode,
// and an optional title string.
type ChromeOptions struct {
	Style      config.WindowStyle
	Mode       theme.Mode
	Title      string
	Background string // resolved terminal background, used behind the screen
	FontFamily []string
	FontSize   float64
}

// renderChrome wraps inner (the already-built <svg> screen markup, sized
// docWidth x docHeight em) in window chrome: margin, drop shadow,
// rounded body, header bar with centered title and traffic-light
// buttons, and a two-tone border.
func renderChrome(w io.Writer, inner string, docWidth, docHeight float64, opt ChromeOptions, fp int) error {
	st := opt.Style
	margin := st.Margin
	headerH := round(st.Header.Height, fp)
	width := round(docWidth, fp)
	height := round(docHeight+headerH, fp)
	totalW := round(width+margin.Left+margin.Right, fp)
	totalH := round(height+margin.Top+margin.Bottom, fp)
	radius := round(st.Border.Radius, fp)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%spx" height="%spx" viewBox="0 0 %s %s">`,
		formatNum(totalW), formatNum(totalH), formatNum(totalW), formatNum(totalH))
	fmt.Fprintf(&b, `<g transform="translate(%s,%s)">`, formatNum(round(margin.Left, fp)), formatNum(round(margin.Top, fp)))

	if st.Shadow.Enabled {
		sh := st.Shadow
		color := cssColor(sh.Color.Resolve(opt.Mode))
		b.WriteString(`<filter id="shadow"><feGaussianBlur stdDeviation="`)
		b.WriteString(formatNum(round(sh.Blur, fp)))
		b.WriteString(`"/></filter>`)
		fmt.Fprintf(&b, `<rect width="%s" height="%s" x="%s" y="%s" fill="%s" rx="%s" ry="%s" filter="url(#shadow)"/>`,
			formatNum(width), formatNum(height), formatNum(round(sh.X, fp)), formatNum(round(sh.Y, fp)),
			color, formatNum(radius), formatNum(radius))
	}

	fmt.Fprintf(&b, `<rect fill="%s" rx="%s" ry="%s" width="%s" height="%s"/>`,
		opt.Background, formatNum(radius), formatNum(radius), formatNum(width), formatNum(height))

	headerColor := cssColor(st.Header.Color.Resolve(opt.Mode))
	b.WriteString(`<clipPath id="header">`)
	fmt.Fprintf(&b, `<rect width="%s" height="%s"/>`, formatNum(width), formatNum(headerH))
	b.WriteString(`</clipPath>`)
	fmt.Fprintf(&b, `<rect fill="%s" rx="%s" ry="%s" width="%s" height="%s" clip-path="url(#header)"/>`,
		headerColor, formatNum(radius), formatNum(radius), formatNum(width), formatNum(round(2*headerH, fp)))

	hh2 := round(st.Header.Height/2, fp)
	buttonClearance := buttonEdgeClearance(st.Buttons, width)

	if opt.Title != "" {
		availableEm := (width - 2*buttonClearance) / st.Title.Font.Size
		title := trimTitle(opt.Title, availableEm)
		fmt.Fprintf(&b, `<text x="%s" y="%s" fill="%s" font-size="%s" font-family="%s" text-anchor="middle" dominant-baseline="central"`,
			formatNum(round(width/2, fp)), formatNum(hh2), cssColor(st.Title.Color.Resolve(opt.Mode)),
			formatNum(round(st.Title.Font.Size, fp)), escapeAttr(strings.Join(st.Title.Font.Family, ", ")))
		if st.Title.Font.Weight != "" {
			fmt.Fprintf(&b, ` font-weight="%s"`, st.Title.Font.Weight)
		}
		b.WriteString(">")
		b.WriteString(escapeText(title))
		b.WriteString("</text>")
	}

	b.WriteString(renderButtons(st.Buttons, opt.Mode, width, hh2, fp))

	fmt.Fprintf(&b, `<g transform="translate(0,%s)">`, formatNum(headerH))
	b.WriteString(inner)
	b.WriteString("</g>")

	gap := st.Border.Width
	fmt.Fprintf(&b, `<rect width="%s" height="%s" fill="none" stroke="%s" stroke-width="%s" rx="%s" ry="%s"/>`,
		formatNum(width), formatNum(height), cssColor(st.Border.Colors.Outer.Resolve(opt.Mode)),
		formatNum(round(st.Border.Width, fp)), formatNum(radius), formatNum(radius))
	fmt.Fprintf(&b, `<rect width="%s" height="%s" x="%s" y="%s" fill="none" stroke="%s" stroke-width="%s" rx="%s" ry="%s"/>`,
		formatNum(round(width-gap*2, fp)), formatNum(round(height-gap*2, fp)), formatNum(round(gap, fp)), formatNum(round(gap, fp)),
		cssColor(st.Border.Colors.Inner.Resolve(opt.Mode)), formatNum(round(st.Border.Width, fp)),
		formatNum(round(radius-gap, fp)), formatNum(round(radius-gap, fp)))

	b.WriteString("</g></svg>\n")
	_, err := w.Write([]byte(b.String()))
	return err
}

func renderButtons(cfg config.WindowButtons, mode theme.Mode, width, y float64, fp int) string {
	var b strings.Builder
	x := buttonsStartX(cfg, width)
	for _, btn := range []config.WindowButton{cfg.Close, cfg.Minimize, cfg.Maximize} {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
			formatNum(round(x, fp)), formatNum(y), formatNum(round(cfg.Radius, fp)), cssColor(btn.Color.Resolve(mode)))
		x += cfg.Spacing
	}
	return b.String()
}

func buttonsStartX(cfg config.WindowButtons, width float64) float64 {
	return width - cfg.Spacing*2
}

// buttonEdgeClearance is the distance from the header's nearest edge to
// the farthest button, counting outward to the button's far edge
// (center plus radius). Buttons are drawn right-aligned here, so the
// farthest-from-edge button is the first (leftmost) one; clearance is
// measured against the header's right edge either way, since a single
// button cluster occupies one side.
func buttonEdgeClearance(cfg config.WindowButtons, width float64) float64 {
	leftmost := buttonsStartX(cfg, width)
	return width - leftmost + cfg.Radius
}

// trimTitle truncates s so its estimated rendered width fits within
// maxWidthEm, appending an ellipsis when truncated. Character widths
// are estimated proportionally rather than measured: narrow punctuation
// counts for roughly 0.4em, wide CJK/emoji for roughly 1.3em, everything
// else for 1.0em. If even a single "…" would not fit, the result is
// empty.
func trimTitle(s string, maxWidthEm float64) string {
	const ellipsisWidth = 1.0
	if maxWidthEm < ellipsisWidth {
		return ""
	}

	runes := []rune(s)
	total := 0.0
	for i, r := range runes {
		total += charEmWidth(r)
		if total > maxWidthEm {
			if i == 0 {
				return "…"
			}
			trimmed := runes[:i]
			for len(trimmed) > 0 {
				kept := widthOf(trimmed) + ellipsisWidth
				if kept <= maxWidthEm {
					break
				}
				trimmed = trimmed[:len(trimmed)-1]
			}
			if len(trimmed) == 0 {
				return "…"
			}
			return string(trimmed) + "…"
		}
	}
	return s
}

func widthOf(runes []rune) float64 {
	total := 0.0
	for _, r := range runes {
		total += charEmWidth(r)
	}
	return total
}

func charEmWidth(r rune) float64 {
	switch {
	case r == ' ' || r == '.' || r == ',' || r == '\'' || r == 'i' || r == 'l' || r == '|':
		return 0.4
	case uniwidth.RuneWidth(r) > 1:
		return 1.3
	default:
		return 1.0
	}
}
