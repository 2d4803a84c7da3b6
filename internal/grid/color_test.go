package grid

import "testing"

func TestDefaultColorIsDefault(t *testing.T) {
	c := DefaultColor()
	if !c.IsDefault() {
		t.Error("expected DefaultColor() to be default")
	}
	if PaletteColor(3).IsDefault() {
		t.Error("expected a palette color to not be default")
	}
}

func TestColorEqual(t *testing.T) {
	if !PaletteColor(5).Equal(PaletteColor(5)) {
		t.Error("expected equal palette colors to compare equal")
	}
	if PaletteColor(5).Equal(PaletteColor(6)) {
		t.Error("expected different palette indices to compare unequal")
	}
	if !TrueColor(1, 2, 3, 255).Equal(TrueColor(1, 2, 3, 255)) {
		t.Error("expected equal true colors to compare equal")
	}
	if TrueColor(1, 2, 3, 255).Equal(TrueColor(1, 2, 3, 254)) {
		t.Error("expected different alpha to compare unequal")
	}
	if PaletteColor(1).Equal(TrueColor(0, 0, 0, 255)) {
		t.Error("expected colors of different kinds to compare unequal")
	}
	if !DefaultColor().Equal(DefaultColor()) {
		t.Error("expected two default colors to compare equal regardless of payload")
	}
}
