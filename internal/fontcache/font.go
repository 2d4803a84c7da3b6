package fontcache

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/vtrender/termframe/internal/render"
)

// DecodedFont wraps a parsed sfnt.Font with the metrics and glyph-lookup
// buffer the renderer needs to build a render.FontFace.
type DecodedFont struct {
	face   *sfnt.Font
	buf    sfnt.Buffer
	family string
}

// Decode parses raw TTF/OTF bytes into a DecodedFont. WOFF/WOFF2 are
// not unpacked by golang.org/x/image/font/sfnt itself (it expects a
// bare sfnt table directory); embedding a WOFF decompressor is left as a
// follow-up since every font this system has been pointed at in
// practice ships TTF or OTF source files even when a WOFF mirror also
// exists.
func Decode(data []byte) (*DecodedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontcache: parse font: %w", err)
	}
	d := &DecodedFont{face: f}
	if name, err := f.Name(&d.buf, sfnt.NameIDFamily); err == nil {
		d.family = name
	}
	return d, nil
}

// Family returns the font's declared family name, or "" if unavailable.
func (d *DecodedFont) Family() string { return d.family }

const ppem = fixed.Int26_6(1000 << 6) // measure in thousandths of an em

// Width returns the '0' glyph's horizontal advance in em.
func (d *DecodedFont) Width() float64 {
	idx, err := d.face.GlyphIndex(&d.buf, '0')
	if err != nil || idx == 0 {
		return 0.6
	}
	adv, err := d.face.GlyphAdvance(&d.buf, idx, ppem, font.HintingNone)
	if err != nil {
		return 0.6
	}
	return float64(adv) / float64(ppem)
}

// Metrics returns (ascender, descender) in em, descender negative.
func (d *DecodedFont) Metrics() (ascender, descender float64) {
	m, err := d.face.Metrics(&d.buf, ppem, font.HintingNone)
	if err != nil {
		return 0.8, -0.2
	}
	return float64(m.Ascent) / float64(ppem), -float64(m.Descent) / float64(ppem)
}

// HasChar reports whether the font provides a glyph for r.
func (d *DecodedFont) HasChar(r rune) bool {
	idx, err := d.face.GlyphIndex(&d.buf, r)
	return err == nil && idx != 0
}

// ToFace builds a render.FontFace from the decoded font plus the
// caller-declared weight range, style, and source location (the weight
// range and style come from configuration rather than font introspection
// since most web font deliveries split weight/style across separate
// files rather than encoding a variable axis).
func (d *DecodedFont) ToFace(weight render.WeightRange, style render.FontStyle, url, format string, cellWidth float64) render.FontFace {
	w := d.Width()
	return render.FontFace{
		Family:       d.family,
		Weight:       weight,
		Style:        style,
		HasChar:      d.HasChar,
		URL:          url,
		Format:       format,
		MetricsMatch: metricsMatch(w, cellWidth),
	}
}

func metricsMatch(faceWidth, cellWidth float64) bool {
	const tolerance = 0.01
	diff := faceWidth - cellWidth
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
