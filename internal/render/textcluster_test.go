package render

import (
	"testing"

	"github.com/vtrender/termframe/internal/grid"
)

func plainCell(g string) grid.Cell {
	return grid.Cell{Grapheme: g, Width: 1, Attrs: grid.DefaultAttributes()}
}

func TestClusterByAttributesMergesSameAttrs(t *testing.T) {
	cells := []grid.Cell{plainCell("a"), plainCell("b"), plainCell("c")}

	clusters := clusterByAttributes(cells)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if len(clusters[0].cells) != 3 {
		t.Errorf("expected 3 cells in the cluster, got %d", len(clusters[0].cells))
	}
}

func TestClusterByAttributesSplitsOnAttributeChange(t *testing.T) {
	bold := plainCell("b")
	bold.Attrs.Intensity = grid.IntensityBold
	cells := []grid.Cell{plainCell("a"), bold, plainCell("c")}

	clusters := clusterByAttributes(cells)
	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters (change, change back), got %d", len(clusters))
	}
}

func TestClusterByAttributesSkipsSpacerCells(t *testing.T) {
	wide := grid.Cell{Grapheme: "中", Width: 2, Attrs: grid.DefaultAttributes()}
	spacer := grid.Cell{Grapheme: "", Width: 0, Attrs: grid.DefaultAttributes()}
	cells := []grid.Cell{wide, spacer}

	clusters := clusterByAttributes(cells)
	if len(clusters) != 1 || len(clusters[0].cells) != 1 {
		t.Fatalf("expected the spacer cell dropped, got %+v", clusters)
	}
}

func noFaces() FontConfig {
	return FontConfig{NormalWeight: 400, BoldWeight: 700, FaintWeight: 400}
}

func TestSubdivideSingleRunWithoutFaces(t *testing.T) {
	cl := attrCluster{attrs: grid.DefaultAttributes(), cells: []grid.Cell{plainCell("a"), plainCell("b")}}

	subs := subdivide(cl, noFaces())
	if len(subs) != 1 {
		t.Fatalf("expected 1 subcluster, got %d", len(subs))
	}
	if subs[0].text != "ab" {
		t.Errorf("expected merged text \"ab\", got %q", subs[0].text)
	}
	if !subs[0].forceLength {
		t.Error("expected forceLength when no font faces are configured")
	}
	if !subs[0].forceXY {
		t.Error("expected the first subcluster to force an explicit position")
	}
}

func TestSubdivideSplitsOnWideGrapheme(t *testing.T) {
	cl := attrCluster{attrs: grid.DefaultAttributes(), cells: []grid.Cell{
		plainCell("a"),
		{Grapheme: "中", Width: 2, Attrs: grid.DefaultAttributes()},
		plainCell("b"),
	}}

	subs := subdivide(cl, noFaces())
	if len(subs) != 3 {
		t.Fatalf("expected 3 subclusters split around the wide grapheme, got %d", len(subs))
	}
	if subs[1].text != "中" || subs[1].cellCount != 2 {
		t.Errorf("expected the wide grapheme isolated, got %q count %d", subs[1].text, subs[1].cellCount)
	}
}

func TestSubdivideSplitsOnFaceChange(t *testing.T) {
	fc := FontConfig{
		NormalWeight: 400,
		BoldWeight:   700,
		Faces: []FontFace{
			{Family: "Latin", Weight: WeightRange{100, 900}, Style: StyleNormal, HasChar: func(r rune) bool { return r < 0x100 }, MetricsMatch: true},
			{Family: "CJK", Weight: WeightRange{100, 900}, Style: StyleNormal, HasChar: func(r rune) bool { return r >= 0x4e00 }, MetricsMatch: true},
		},
	}
	cl := attrCluster{attrs: grid.DefaultAttributes(), cells: []grid.Cell{
		plainCell("a"),
		{Grapheme: "中", Width: 2, Attrs: grid.DefaultAttributes()},
	}}

	subs := subdivide(cl, fc)
	if len(subs) != 2 {
		t.Fatalf("expected 2 subclusters for different faces, got %d", len(subs))
	}
	if subs[0].face.Family != "Latin" || subs[1].face.Family != "CJK" {
		t.Errorf("expected Latin then CJK face selection, got %q then %q", subs[0].face.Family, subs[1].face.Family)
	}
}
