package render

import (
	"testing"

	"github.com/vtrender/termframe/internal/grid"
)

func TestCSSColorOpaqueFormatsAsHex(t *testing.T) {
	got := CSSColor(grid.TrueColor(0xff, 0x00, 0x80, 0xff))
	if got != "#ff0080" {
		t.Errorf("expected #ff0080, got %q", got)
	}
}

func TestCSSColorTranslucentFormatsAsRGBA(t *testing.T) {
	got := CSSColor(grid.TrueColor(10, 20, 30, 128))
	want := "rgba(10,20,30,0.502)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
