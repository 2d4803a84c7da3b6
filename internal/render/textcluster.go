package render

import (
	"unicode/utf8"

	"github.com/vtrender/termframe/internal/grid"
)

// attrCluster is a maximal run of cells sharing every SGR attribute.
type attrCluster struct {
	attrs grid.Attributes
	cells []grid.Cell
}

// clusterByAttributes splits a row's visible cells into maximal runs
// that share all attributes, skipping the second (spacer) column of
// each wide grapheme.
func clusterByAttributes(cells []grid.Cell) []attrCluster {
	var out []attrCluster
	for _, c := range cells {
		if c.Width == 0 {
			continue
		}
		if n := len(out); n > 0 && out[n-1].attrs == c.Attrs {
			out[n-1].cells = append(out[n-1].cells, c)
			continue
		}
		out = append(out, attrCluster{attrs: c.Attrs, cells: []grid.Cell{c}})
	}
	return out
}

// subcluster is one <tspan>-worth of text: a contiguous run of cells
// rendered with a single font face, with an explicit x position when it
// doesn't simply continue from the previous subcluster.
type subcluster struct {
	face        FontFace
	text        string
	cellCount   int // number of grid columns consumed (counts wide cells once)
	forceXY     bool
	forceLength bool // emit an explicit textLength hint (metrics-mismatched face)
}

// sameFace reports whether two faces are the same rendering choice; it
// compares the fields that affect output rather than the whole struct,
// since FontFace.HasChar is a func value and so not comparable with ==.
func sameFace(a, b FontFace) bool {
	return a.Family == b.Family && a.Weight == b.Weight && a.Style == b.Style &&
		a.URL == b.URL && a.MetricsMatch == b.MetricsMatch
}

// subdivide splits an attribute cluster into subclusters along font-face
// boundaries: a new subcluster starts whenever the best-matching face
// changes, and on both sides of any wide grapheme. A wide grapheme, or a
// run set in a metrics-mismatched face, carries a textLength hint.
func subdivide(cluster attrCluster, fc FontConfig) []subcluster {
	weight := fc.NormalWeight
	switch cluster.attrs.Intensity {
	case grid.IntensityBold:
		weight = fc.BoldWeight
	case grid.IntensityHalf:
		weight = fc.FaintWeight
	}
	style := StyleNormal
	if cluster.attrs.Italic {
		style = StyleItalic
	}

	var out []subcluster
	prevWide := false
	for _, cell := range cluster.cells {
		r, _ := utf8.DecodeRuneInString(cell.Grapheme)
		face, _ := fc.bestFace(r, weight, style)

		n := len(out)
		wide := cell.Width > 1
		needsSplit := n == 0 || wide || prevWide || !sameFace(out[n-1].face, face)
		prevWide = wide

		if needsSplit {
			out = append(out, subcluster{
				face:        face,
				text:        cell.Grapheme,
				cellCount:   cell.Width,
				forceXY:     true,
				forceLength: wide || !face.MetricsMatch,
			})
			continue
		}
		out[n-1].text += cell.Grapheme
		out[n-1].cellCount += cell.Width
	}
	return out
}
