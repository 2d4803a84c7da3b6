package grid

import "testing"

func TestNewCellIsBlankSpace(t *testing.T) {
	c := NewCell()

	if c.Grapheme != " " || c.Width != 1 {
		t.Errorf("expected blank space cell, got %q width %d", c.Grapheme, c.Width)
	}
	if !c.IsBlank() {
		t.Error("expected a fresh cell to be blank")
	}
}

func TestIsBlankFalseForNonSpaceGlyph(t *testing.T) {
	c := Cell{Grapheme: "a", Width: 1, Attrs: DefaultAttributes()}

	if c.IsBlank() {
		t.Error("expected non-space glyph to not be blank")
	}
}

func TestIsBlankFalseForNonDefaultAttrs(t *testing.T) {
	c := Cell{Grapheme: " ", Width: 1, Attrs: DefaultAttributes()}
	c.Attrs.Fg = PaletteColor(2)

	if c.IsBlank() {
		t.Error("expected a colored space to not count as blank")
	}
}

func TestDefaultAttributesIsDefault(t *testing.T) {
	if !DefaultAttributes().IsDefault() {
		t.Error("expected DefaultAttributes() to report itself as default")
	}

	a := DefaultAttributes()
	a.Italic = true
	if a.IsDefault() {
		t.Error("expected a modified attribute set to not be default")
	}
}
