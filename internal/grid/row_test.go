package grid

import "testing"

func TestVisibleCellsTrimsTrailingBlanks(t *testing.T) {
	row := NewRow(5)
	row.Cells[0] = Cell{Grapheme: "a", Width: 1, Attrs: DefaultAttributes()}
	row.Cells[1] = Cell{Grapheme: "b", Width: 1, Attrs: DefaultAttributes()}

	visible := row.VisibleCells()
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible cells, got %d", len(visible))
	}
	if visible[0].Grapheme != "a" || visible[1].Grapheme != "b" {
		t.Errorf("unexpected visible cells: %q %q", visible[0].Grapheme, visible[1].Grapheme)
	}
}

func TestVisibleCellsAllBlankYieldsNil(t *testing.T) {
	row := NewRow(4)

	if visible := row.VisibleCells(); visible != nil {
		t.Errorf("expected nil for an all-blank row, got %v", visible)
	}
}

func TestVisibleCellsKeepsNonDefaultAttrsEvenIfBlankGlyph(t *testing.T) {
	row := NewRow(3)
	row.Cells[2].Attrs.Bg = PaletteColor(1)

	visible := row.VisibleCells()
	if len(visible) != 3 {
		t.Errorf("expected trailing colored blank to count as visible, got %d cells", len(visible))
	}
}

func TestRowDisplayWidthSumsVisibleCellWidths(t *testing.T) {
	row := NewRow(4)
	row.Cells[0] = Cell{Grapheme: "中", Width: 2, Attrs: DefaultAttributes()}
	row.Cells[2] = Cell{Grapheme: "", Width: 0, Attrs: DefaultAttributes()}
	row.Cells[1] = Cell{Grapheme: "", Width: 0, Attrs: DefaultAttributes()}

	if got := row.DisplayWidth(); got != 2 {
		t.Errorf("expected display width 2, got %d", got)
	}
}

func TestRowCloneIsIndependent(t *testing.T) {
	row := NewRow(2)
	row.Cells[0].Grapheme = "a"

	clone := row.Clone()
	clone.Cells[0].Grapheme = "b"

	if row.Cells[0].Grapheme != "a" {
		t.Error("expected original row unaffected by mutating the clone")
	}
}

func TestRowResizeTruncatesAndPads(t *testing.T) {
	row := NewRow(4)
	for i := range row.Cells {
		row.Cells[i] = Cell{Grapheme: "x", Width: 1, Attrs: DefaultAttributes()}
	}

	shrunk := row.Resize(2)
	if shrunk.Width() != 2 {
		t.Errorf("expected width 2, got %d", shrunk.Width())
	}

	grown := row.Resize(6)
	if grown.Width() != 6 {
		t.Errorf("expected width 6, got %d", grown.Width())
	}
	if grown.Cells[0].Grapheme != "x" {
		t.Error("expected existing content preserved on grow")
	}
	if !grown.Cells[5].IsBlank() {
		t.Error("expected new padding cells to be blank")
	}
}
